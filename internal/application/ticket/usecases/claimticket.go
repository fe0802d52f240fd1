package usecases

import (
	"context"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type ClaimTicketCommand struct {
	TicketID uint
	AgentID  uint
}

type ClaimTicketResult struct {
	AssigneeID uint
	StatusID   uint
}

// ClaimTicketUseCase lets a project member take an unassigned ticket. The
// status moves to in_progress when that code is configured; otherwise the
// claim still happens and the gap is noted in the audit trail.
type ClaimTicketUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewClaimTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ClaimTicketUseCase {
	return &ClaimTicketUseCase{
		gate: actionGate{
			ticketRepo:  ticketRepo,
			agentRepo:   agentRepo,
			projectRepo: projectRepo,
			statusRepo:  statusRepo,
		},
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ClaimTicketUseCase) Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanClaim {
		return nil, errors.NewForbiddenError("this ticket cannot be claimed")
	}

	if err := res.ticket.AssignTo(res.agent.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	inProgress, err := uc.gate.statusRepo.GetByCode(ctx, catalog.StatusCodeInProgress.String())
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	if inProgress != nil {
		if err := res.ticket.ApplyStatus(inProgress); err != nil {
			return nil, errors.NewInternalError("failed to apply in-progress status", err.Error())
		}
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to claim ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if inProgress != nil {
		recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
			"Claimed and moved to "+inProgress.Name(), true)
	} else {
		uc.logger.Warnw("in_progress status code is not configured", "ticket_id", cmd.TicketID)
		recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
			"Claimed; status unchanged because no in-progress status is configured", true)
	}

	uc.logger.Infow("ticket claimed", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID)

	return &ClaimTicketResult{
		AssigneeID: res.agent.ID(),
		StatusID:   res.ticket.StatusID(),
	}, nil
}
