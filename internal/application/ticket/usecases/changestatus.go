package usecases

import (
	"context"
	"fmt"
	"strings"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	AgentID  uint
	StatusID uint
	// Comment is mandatory when the target status is resolved or closed.
	Comment string
}

type ChangeStatusResult struct {
	StatusID   uint
	StatusName string
}

type ChangeStatusUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	notifier    Notifier
	logger      logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	notifier Notifier,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
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

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanChangeStatus {
		return nil, errors.NewForbiddenError("you cannot change the status of this ticket")
	}

	target, err := uc.gate.statusRepo.GetByID(ctx, cmd.StatusID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.NewNotFoundError("status not found")
	}

	comment := strings.TrimSpace(cmd.Comment)
	if (target.IsResolved() || target.IsClosed()) && comment == "" {
		return nil, errors.NewValidationError("a comment is required when resolving or closing a ticket")
	}

	oldName := ""
	if res.status != nil {
		oldName = res.status.Name()
	}

	if err := res.ticket.ApplyStatus(target); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
		fmt.Sprintf("Status changed from %s to %s", oldName, target.Name()), true)

	if comment != "" {
		internal := !target.IsResolved()
		agentComment, err := ticket.NewAgentComment(res.ticket.ID(), res.agent.ID(), res.agent.DisplayName(), comment, internal)
		if err == nil {
			if err := uc.commentRepo.Save(ctx, agentComment); err != nil {
				uc.logger.Warnw("failed to save status change comment", "ticket_id", cmd.TicketID, "error", err)
			}
		}
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID, "from", oldName, "to", target.Name(), "agent_id", cmd.AgentID)

	if uc.notifier != nil {
		uc.notifier.StatusChanged(ctx, res.ticket, oldName, target.Name())
		if target.IsResolved() {
			uc.notifier.TicketResolved(ctx, res.ticket, comment)
		}
		if target.IsClosed() {
			uc.notifier.TicketClosed(ctx, res.ticket)
		}
	}

	return &ChangeStatusResult{
		StatusID:   target.ID(),
		StatusName: target.Name(),
	}, nil
}
