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

func TestClaimTicket_MovesToInProgress(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 2, "in_progress", false, false, false))

	uc := NewClaimTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	result, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 7, AgentID: 10})
	require.NoError(t, err)

	assert.Equal(t, uint(10), result.AssigneeID)
	assert.Equal(t, uint(2), result.StatusID)
	assert.True(t, tk.IsAssignedTo(10))
}

func TestClaimTicket_WithoutInProgressStatusStillClaims(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, member, current)

	var note *ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		note = c
		return c.SetID(1)
	}

	uc := NewClaimTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	result, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 7, AgentID: 10})
	require.NoError(t, err)

	assert.True(t, tk.IsAssignedTo(10))
	assert.Equal(t, uint(1), result.StatusID, "status stays put")
	require.NotNil(t, note)
	assert.Contains(t, note.Body(), "no in-progress status")
}

func TestClaimTicket_AlreadyAssignedForbidden(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	assignee := uint(42)
	tk := fixtureTicket(t, 7, 1, 1, &assignee)
	f := newGateFixture(t, tk, member, current)

	uc := NewClaimTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, testLogger())
	_, err := uc.Execute(context.Background(), ClaimTicketCommand{TicketID: 7, AgentID: 10})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestResolveTicket_AssigneePublishesResolution(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 2, "in_progress", false, false, false)
	assignee := uint(10)
	tk := fixtureTicket(t, 7, 1, 2, &assignee)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 3, "resolved", false, true, false))

	var note *ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		note = c
		return c.SetID(1)
	}

	uc := NewResolveTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	result, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID: 7, AgentID: 10, Comment: "Replaced the fuser",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), result.StatusID)
	assert.NotNil(t, tk.ResolvedAt())
	require.NotNil(t, note)
	assert.True(t, note.IsSystem())
	assert.False(t, note.IsInternal(), "resolution notice is public")
	assert.Contains(t, note.Body(), "Replaced the fuser")
}

func TestResolveTicket_CommentRequired(t *testing.T) {
	uc := NewResolveTicketUseCase(nil, nil, nil, nil, nil, nil, testLogger())
	_, err := uc.Execute(context.Background(), ResolveTicketCommand{TicketID: 7, AgentID: 10})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestResolveTicket_NonAssigneeForbidden(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 2, "in_progress", false, false, false)
	assignee := uint(42)
	tk := fixtureTicket(t, 7, 1, 2, &assignee)
	f := newGateFixture(t, tk, member, current)

	uc := NewResolveTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	_, err := uc.Execute(context.Background(), ResolveTicketCommand{
		TicketID: 7, AgentID: 10, Comment: "done",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCloseTicket_RequiresResolvedStatus(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 2, "in_progress", false, false, false)
	assignee := uint(10)
	tk := fixtureTicket(t, 7, 1, 2, &assignee)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 4, "closed", false, false, true))

	uc := NewCloseTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 7, AgentID: 10})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestCloseTicket_ClosesResolvedTicket(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 3, "resolved", false, true, false)
	assignee := uint(10)
	tk := fixtureTicket(t, 7, 1, 3, &assignee)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 4, "closed", false, false, true))

	closedNotified := false
	f.notifier.TicketClosedFunc = func(ctx context.Context, tk *ticket.Ticket) { closedNotified = true }

	var note *ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		note = c
		return c.SetID(1)
	}

	uc := NewCloseTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	result, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 7, AgentID: 10})
	require.NoError(t, err)

	assert.Equal(t, uint(4), result.StatusID)
	assert.NotNil(t, tk.ClosedAt())
	assert.True(t, closedNotified)
	require.NotNil(t, note)
	assert.True(t, note.IsInternal(), "a plain close is audit trail, not a reporter-facing message")
}

func TestCloseTicket_WithRemarksSkipsResolution(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 2, "in_progress", false, false, false)
	assignee := uint(10)
	tk := fixtureTicket(t, 7, 1, 2, &assignee)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 5, "closed_remarks", false, false, true))

	uc := NewCloseTicketUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())

	_, err := uc.Execute(context.Background(), CloseTicketCommand{TicketID: 7, AgentID: 10, WithRemarks: true})
	require.Error(t, err, "remarks are mandatory")

	var note *ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		note = c
		return c.SetID(1)
	}

	result, err := uc.Execute(context.Background(), CloseTicketCommand{
		TicketID: 7, AgentID: 10, WithRemarks: true, Comment: "Reporter unreachable for two weeks",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), result.StatusID)
	assert.NotNil(t, tk.ClosedAt())
	require.NotNil(t, note)
	assert.False(t, note.IsInternal(), "closing remarks are written for the reporter")
	assert.Contains(t, note.Body(), "Reporter unreachable")
}
