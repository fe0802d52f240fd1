package usecases

import (
	"context"
	"strings"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	AgentID  uint
	// WithRemarks closes an unresolved ticket with a mandatory explanation.
	// A plain close requires the ticket to be resolved first; remarks are
	// then optional.
	WithRemarks bool
	Comment     string
}

type CloseTicketResult struct {
	StatusID   uint
	StatusName string
}

type CloseTicketUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	notifier Notifier,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
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

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	comment := strings.TrimSpace(cmd.Comment)
	if cmd.WithRemarks && comment == "" {
		return nil, errors.NewValidationError("closing remarks are required")
	}

	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}

	targetCode := catalog.StatusCodeClosed
	if cmd.WithRemarks {
		if !res.actions.CanCloseWithRemarks {
			return nil, errors.NewForbiddenError("you cannot close this ticket with remarks")
		}
		targetCode = catalog.StatusCodeClosedRemarks
	} else if !res.actions.CanClose {
		return nil, errors.NewForbiddenError("this ticket cannot be closed")
	}

	target, err := uc.gate.statusRepo.GetByCode(ctx, targetCode.String())
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.NewInternalError("closing status is not configured")
	}

	if err := res.ticket.ApplyStatus(target); err != nil {
		return nil, errors.NewInternalError("failed to apply closing status", err.Error())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	note := "Closed"
	if comment != "" {
		note = "Closed: " + comment
	}
	// Closing remarks address the reporter and stay public; a plain close is
	// internal bookkeeping.
	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent, note, !cmd.WithRemarks)

	uc.logger.Infow("ticket closed",
		"ticket_id", cmd.TicketID, "agent_id", cmd.AgentID, "with_remarks", cmd.WithRemarks)

	if uc.notifier != nil {
		uc.notifier.TicketClosed(ctx, res.ticket)
	}

	return &CloseTicketResult{
		StatusID:   target.ID(),
		StatusName: target.Name(),
	}, nil
}
