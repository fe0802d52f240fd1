package usecases

import (
	"context"
	"fmt"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type ReassignTicketCommand struct {
	TicketID uint
	AgentID  uint
	// AssigneeID of nil unassigns the ticket.
	AssigneeID *uint
}

type ReassignTicketResult struct {
	AssigneeID   *uint
	AssigneeName string
}

type ReassignTicketUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewReassignTicketUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ReassignTicketUseCase {
	return &ReassignTicketUseCase{
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

func (uc *ReassignTicketUseCase) Execute(ctx context.Context, cmd ReassignTicketCommand) (*ReassignTicketResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanReassign {
		return nil, errors.NewForbiddenError("you cannot reassign this ticket")
	}

	if cmd.AssigneeID == nil {
		res.ticket.Unassign()
		if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
			uc.logger.Errorw("failed to unassign ticket", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}

		recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent, "Assignment cleared", true)
		uc.logger.Infow("ticket unassigned", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID)
		return &ReassignTicketResult{}, nil
	}

	assignee, err := uc.gate.agentRepo.GetByID(ctx, *cmd.AssigneeID)
	if err != nil {
		return nil, err
	}
	if assignee == nil || !assignee.IsActive() {
		return nil, errors.NewNotFoundError("assignee not found")
	}
	if !assignee.IsPrivileged() && !assignee.IsMemberOf(res.ticket.ProjectID()) {
		return nil, errors.NewValidationError("assignee is not a member of the ticket's project")
	}

	if err := res.ticket.AssignTo(assignee.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to reassign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
		fmt.Sprintf("Assigned to %s", assignee.DisplayName()), true)

	uc.logger.Infow("ticket reassigned",
		"ticket_id", cmd.TicketID, "assignee_id", assignee.ID(), "agent_id", cmd.AgentID)

	assigneeID := assignee.ID()
	return &ReassignTicketResult{
		AssigneeID:   &assigneeID,
		AssigneeName: assignee.DisplayName(),
	}, nil
}
