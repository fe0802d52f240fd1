package usecases

import (
	"context"
	"time"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AgentID  uint
	Body     string
	Internal bool
	AuthorIP string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	notifier Notifier,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		gate: actionGate{
			ticketRepo:  ticketRepo,
			agentRepo:   agentRepo,
			projectRepo: projectRepo,
			statusRepo:  statusRepo,
		},
		commentRepo: commentRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanComment {
		return nil, errors.NewForbiddenError("you cannot comment on this ticket")
	}

	comment, err := ticket.NewAgentComment(res.ticket.ID(), res.agent.ID(), res.agent.DisplayName(), cmd.Body, cmd.Internal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	comment.SetAuthorIP(cmd.AuthorIP)

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID(), "internal", cmd.Internal)

	// Internal notes never reach the reporter.
	if uc.notifier != nil && !cmd.Internal {
		uc.notifier.CommentAdded(ctx, res.ticket, comment)
	}

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
