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

type ChangeProjectCommand struct {
	TicketID  uint
	AgentID   uint
	ProjectID uint
}

type ChangeProjectResult struct {
	ProjectID   uint
	ProjectName string
}

// ChangeProjectUseCase reroutes a misfiled ticket to another project. The
// assignee is cleared because they may not belong to the target project.
type ChangeProjectUseCase struct {
	gate        actionGate
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewChangeProjectUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	projectRepo catalog.ProjectRepository,
	statusRepo catalog.StatusRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ChangeProjectUseCase {
	return &ChangeProjectUseCase{
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

func (uc *ChangeProjectUseCase) Execute(ctx context.Context, cmd ChangeProjectCommand) (*ChangeProjectResult, error) {
	res, err := uc.gate.load(ctx, cmd.TicketID, cmd.AgentID)
	if err != nil {
		return nil, err
	}
	if !res.actions.CanChangeProject {
		return nil, errors.NewForbiddenError("you cannot move this ticket to another project")
	}

	if cmd.ProjectID == res.ticket.ProjectID() {
		return nil, errors.NewValidationError("ticket already belongs to that project")
	}

	target, err := uc.gate.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.NewNotFoundError("project not found")
	}
	if !target.IsActive() {
		return nil, errors.NewValidationError("target project is not active")
	}

	oldName := ""
	if res.project != nil {
		oldName = res.project.Name()
	}

	if err := res.ticket.MoveToProject(target.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.gate.ticketRepo.Update(ctx, res.ticket); err != nil {
		uc.logger.Errorw("failed to move ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	recordSystemComment(ctx, uc.commentRepo, uc.logger, res.ticket, res.agent,
		fmt.Sprintf("Moved from %s to %s; assignment cleared", oldName, target.Name()), true)

	uc.logger.Infow("ticket moved to another project",
		"ticket_id", cmd.TicketID, "project_id", target.ID(), "agent_id", cmd.AgentID)

	return &ChangeProjectResult{
		ProjectID:   target.ID(),
		ProjectName: target.Name(),
	}, nil
}
