package usecases

import (
	"context"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	AgentID  uint
}

type GetTicketUseCase struct {
	gate           actionGate
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	categoryRepo   catalog.CategoryRepository
	refs           *RefResolver
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	categoryRepo catalog.CategoryRepository,
	refs *RefResolver,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		gate: actionGate{
			ticketRepo:  ticketRepo,
			agentRepo:   agentRepo,
			projectRepo: projectRepo,
			statusRepo:  statusRepo,
		},
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		categoryRepo:   categoryRepo,
		refs:           refs,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	res, err := uc.gate.load(ctx, query.TicketID, query.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanView {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	refs, err := uc.refs.Resolve(ctx, res.ticket)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, res.ticket.ID(), false)
	if err != nil {
		return nil, err
	}
	discussion, history := dto.SplitComments(comments)

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, res.ticket.ID())
	if err != nil {
		return nil, err
	}
	attachmentDTOs := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, dto.ToAttachmentDTO(a))
	}

	var category *catalog.Category
	if res.ticket.CategoryID() != nil {
		category, _ = uc.categoryRepo.GetByID(ctx, *res.ticket.CategoryID())
	}

	return &dto.TicketDetailDTO{
		Ticket:       dto.ToTicketDTO(res.ticket, refs),
		CustomFields: labeledCustomFields(res.ticket, category),
		Comments:     discussion,
		History:      history,
		Attachments:  attachmentDTOs,
		Actions:      res.actions,
	}, nil
}
