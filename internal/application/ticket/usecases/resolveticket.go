package usecases

import (
	"context"
	"strings"
	"time"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type ResolveTicketCommand struct {
	TicketID uint
	AgentID  uint
	// Comment describes the resolution and is shown to the reporter.
	Comment string
}

type ResolveTicketResult struct {
	StatusID   uint
	ResolvedAt string
}

type ResolveTicketUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	notifier Notifier,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
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

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error) {
	comment := strings.TrimSpace(cmd.Comment)
	if comment == "" {
		return nil, errors.NewValidationError("a resolution comment is required")
	}

	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanResolve {
		return nil, errors.NewForbiddenError("only the assignee can resolve this ticket")
	}

	resolved, err := uc.gate.statusRepo.GetByCode(ctx, catalog.StatusCodeResolved.String())
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, errors.NewInternalError("resolved status is not configured")
	}

	if err := res.ticket.ApplyStatus(resolved); err != nil {
		return nil, errors.NewInternalError("failed to apply resolved status", err.Error())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to resolve ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// The resolution notice is public so the reporter sees what was done.
	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
		"Resolved: "+comment, false)

	uc.logger.Infow("ticket resolved", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID)

	if uc.notifier != nil {
		uc.notifier.TicketResolved(ctx, res.ticket, comment)
	}

	result := &ResolveTicketResult{StatusID: resolved.ID()}
	if res.ticket.ResolvedAt() != nil {
		result.ResolvedAt = res.ticket.ResolvedAt().Format(time.RFC3339)
	}
	return result, nil
}
