package usecases

import (
	"context"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
)

// actionGate loads a ticket together with everything the permission policy
// needs: the acting agent, the ticket's project and status, and the computed
// action eligibility. Every console action goes through it.
type actionGate struct {
	ticketRepo  ticket.Repository
	agentRepo   agent.Repository
	projectRepo catalog.ProjectRepository
	statusRepo  catalog.StatusRepository
}

type gateResult struct {
	ticket  *ticket.Ticket
	agent   *agent.Agent
	project *catalog.Project
	status  *catalog.Status
	actor   ticket.Actor
	actions ticket.Actions
}

func (g *actionGate) resolveActor(ctx context.Context, agentID uint) (ticket.Actor, *agent.Agent, error) {
	actingAgent, err := g.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return ticket.Actor{}, nil, err
	}
	if actingAgent == nil || !actingAgent.IsActive() {
		return ticket.Actor{}, nil, errors.NewUnauthorizedError("agent account is not available")
	}

	activeProjects, err := g.agentRepo.ActiveProjectIDs(ctx, agentID)
	if err != nil {
		return ticket.Actor{}, nil, err
	}

	actor := ticket.Actor{
		AgentID:              actingAgent.ID(),
		Privileged:           actingAgent.IsPrivileged(),
		ProjectManager:       actingAgent.Role().IsProjectManager(),
		MemberProjects:       actingAgent.ProjectIDs(),
		ActiveMemberProjects: activeProjects,
	}
	return actor, actingAgent, nil
}

func (g *actionGate) load(ctx context.Context, ticketID, agentID uint) (*gateResult, error) {
	actor, actingAgent, err := g.resolveActor(ctx, agentID)
	if err != nil {
		return nil, err
	}

	t, err := g.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	project, err := g.projectRepo.GetByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}

	status, err := g.statusRepo.GetByID(ctx, t.StatusID())
	if err != nil {
		return nil, err
	}

	projectActive := project != nil && project.IsActive()
	statusResolved := status != nil && status.IsResolved()
	statusClosed := status != nil && status.IsClosed()

	return &gateResult{
		ticket:  t,
		agent:   actingAgent,
		project: project,
		status:  status,
		actor:   actor,
		actions: ticket.EvaluateActions(actor, t, projectActive, statusResolved, statusClosed),
	}, nil
}
