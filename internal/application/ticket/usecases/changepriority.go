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

type ChangePriorityCommand struct {
	TicketID uint
	AgentID  uint
	// PriorityID of zero clears the priority.
	PriorityID uint
}

type ChangePriorityResult struct {
	PriorityID   *uint
	PriorityName string
}

type ChangePriorityUseCase struct {
	gate         actionGate
	priorityRepo catalog.PriorityRepository
	commentRepo  ticket.CommentRepository
	logger       logger.Interface
}

func NewChangePriorityUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	priorityRepo catalog.PriorityRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		gate: actionGate{
			ticketRepo:  ticketRepo,
			agentRepo:   agentRepo,
			projectRepo: projectRepo,
			statusRepo:  statusRepo,
		},
		priorityRepo: priorityRepo,
		commentRepo:  commentRepo,
		logger:       logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanChangePriority {
		return nil, errors.NewForbiddenError("you cannot change the priority of this ticket")
	}

	result := &ChangePriorityResult{}
	var noteBody string

	if cmd.PriorityID == 0 {
		res.ticket.SetPriority(nil)
		noteBody = "Priority cleared"
	} else {
		priority, err := uc.priorityRepo.GetByID(ctx, cmd.PriorityID)
		if err != nil {
			return nil, err
		}
		if priority == nil {
			return nil, errors.NewNotFoundError("priority not found")
		}
		priorityID := priority.ID()
		res.ticket.SetPriority(&priorityID)
		result.PriorityID = &priorityID
		result.PriorityName = priority.Name()
		noteBody = fmt.Sprintf("Priority set to %s", priority.Name())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to update ticket priority", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent, noteBody, true)

	uc.logger.Infow("ticket priority changed", "ticket_id", cmd.TicketID, "agent_id", cmd.AgentID)
	return result, nil
}
