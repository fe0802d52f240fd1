package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
)

func TestReassignTicket_ManagerAssignsMember(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	target, err := agent.ReconstructAgent(30, "casey", "casey@example.edu", "Casey Tech", "hash",
		agent.RoleAgent, true, []uint{1}, manager.CreatedAt(), manager.UpdatedAt())
	require.NoError(t, err)

	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, manager, current)

	prev := f.agentRepo.GetByIDFunc
	f.agentRepo.GetByIDFunc = func(ctx context.Context, id uint) (*agent.Agent, error) {
		if id == target.ID() {
			return target, nil
		}
		return prev(ctx, id)
	}

	var systemComment *ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		systemComment = c
		return c.SetID(1)
	}

	uc := NewReassignTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	assigneeID := target.ID()
	result, err := uc.Execute(context.Background(), ReassignTicketCommand{
		TicketID: 7, AgentID: 20, AssigneeID: &assigneeID,
	})
	require.NoError(t, err)

	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(30), *result.AssigneeID)
	assert.True(t, tk.IsAssignedTo(30))
	require.NotNil(t, systemComment, "exactly one system comment is recorded")
	assert.True(t, systemComment.IsSystem())
	assert.Contains(t, systemComment.Body(), "Casey Tech")
}

func TestReassignTicket_RejectsNonMember(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	outsider, err := agent.ReconstructAgent(30, "casey", "casey@example.edu", "Casey Tech", "hash",
		agent.RoleAgent, true, []uint{2}, manager.CreatedAt(), manager.UpdatedAt())
	require.NoError(t, err)

	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, manager, current)

	prev := f.agentRepo.GetByIDFunc
	f.agentRepo.GetByIDFunc = func(ctx context.Context, id uint) (*agent.Agent, error) {
		if id == outsider.ID() {
			return outsider, nil
		}
		return prev(ctx, id)
	}

	uc := NewReassignTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	assigneeID := outsider.ID()
	_, err = uc.Execute(context.Background(), ReassignTicketCommand{
		TicketID: 7, AgentID: 20, AssigneeID: &assigneeID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.True(t, tk.IsUnassigned())
}

func TestReassignTicket_NilAssigneeUnassigns(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	assignee := uint(30)
	tk := fixtureTicket(t, 7, 1, 1, &assignee)
	f := newGateFixture(t, tk, manager, current)

	uc := NewReassignTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	result, err := uc.Execute(context.Background(), ReassignTicketCommand{TicketID: 7, AgentID: 20})
	require.NoError(t, err)

	assert.Nil(t, result.AssigneeID)
	assert.True(t, tk.IsUnassigned())
}

func TestReassignTicket_PlainAgentForbidden(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, member, current)

	uc := NewReassignTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	assigneeID := uint(30)
	_, err := uc.Execute(context.Background(), ReassignTicketCommand{
		TicketID: 7, AgentID: 10, AssigneeID: &assigneeID,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}
