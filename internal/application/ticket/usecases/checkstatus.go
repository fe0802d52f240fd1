package usecases

import (
	"context"
	"strings"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CheckStatusQuery struct {
	DisplayID string
	Email     string
}

type CheckStatusResult struct {
	Ticket       dto.TicketDTO             `json:"ticket"`
	CustomFields []dto.CustomFieldValueDTO `json:"custom_fields"`
	Comments     []dto.CommentDTO          `json:"comments"`
	Attachments  []dto.AttachmentDTO       `json:"attachments"`
}

// CheckStatusUseCase is the anonymous status lookup: display ID plus the
// reporter's email, both matched case-insensitively. A wrong email answers
// not-found, the same as a wrong number.
type CheckStatusUseCase struct {
	ticketRepo     ticket.Repository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	categoryRepo   catalog.CategoryRepository
	refs           *RefResolver
	logger         logger.Interface
}

func NewCheckStatusUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	categoryRepo catalog.CategoryRepository,
	refs *RefResolver,
	logger logger.Interface,
) *CheckStatusUseCase {
	return &CheckStatusUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		categoryRepo:   categoryRepo,
		refs:           refs,
		logger:         logger,
	}
}

func (uc *CheckStatusUseCase) Execute(ctx context.Context, query CheckStatusQuery) (*CheckStatusResult, error) {
	displayID := strings.TrimSpace(query.DisplayID)
	email := strings.TrimSpace(query.Email)
	if displayID == "" || email == "" {
		return nil, errors.NewValidationError("ticket number and email are required")
	}

	t, err := uc.ticketRepo.GetByDisplayID(ctx, displayID)
	if err != nil {
		return nil, err
	}
	if t == nil || !strings.EqualFold(t.Reporter().Email, email) {
		return nil, errors.NewNotFoundError("no ticket matches that number and email")
	}

	refs, err := uc.refs.Resolve(ctx, t)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID(), true)
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	var category *catalog.Category
	if t.CategoryID() != nil {
		category, _ = uc.categoryRepo.GetByID(ctx, *t.CategoryID())
	}

	commentDTOs := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, dto.ToCommentDTO(c))
	}

	attachmentDTOs := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		attachmentDTOs = append(attachmentDTOs, dto.ToAttachmentDTO(a))
	}

	return &CheckStatusResult{
		Ticket:       dto.ToTicketDTO(t, refs),
		CustomFields: labeledCustomFields(t, category),
		Comments:     commentDTOs,
		Attachments:  attachmentDTOs,
	}, nil
}
