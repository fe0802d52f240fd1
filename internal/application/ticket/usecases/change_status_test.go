package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
)

type gateFixture struct {
	ticketRepo  *mockTicketRepository
	agentRepo   *mockAgentRepository
	projectRepo *mockProjectRepository
	statusRepo  *mockStatusRepository
	commentRepo *mockCommentRepository
	notifier    *mockNotifier
}

// newGateFixture wires one ticket in project 1 with the given status, viewed
// by the given agent.
func newGateFixture(t *testing.T, tk *ticket.Ticket, actingAgent *agent.Agent, current *catalog.Status) *gateFixture {
	t.Helper()

	statuses := map[uint]*catalog.Status{current.ID(): current}

	return &gateFixture{
		ticketRepo: &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				if id == tk.ID() {
					return tk, nil
				}
				return nil, nil
			},
		},
		agentRepo: &mockAgentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*agent.Agent, error) {
				if id == actingAgent.ID() {
					return actingAgent, nil
				}
				return nil, nil
			},
			ActiveProjectIDsFunc: func(ctx context.Context, agentID uint) ([]uint, error) {
				return actingAgent.ProjectIDs(), nil
			},
		},
		projectRepo: &mockProjectRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Project, error) {
				return fixtureProject(t, id, true), nil
			},
		},
		statusRepo: &mockStatusRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*catalog.Status, error) {
				return statuses[id], nil
			},
		},
		commentRepo: &mockCommentRepository{},
		notifier:    &mockNotifier{},
	}
}

func (f *gateFixture) addStatus(s *catalog.Status) {
	prev := f.statusRepo.GetByIDFunc
	f.statusRepo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Status, error) {
		if id == s.ID() {
			return s, nil
		}
		return prev(ctx, id)
	}
	prevByCode := f.statusRepo.GetByCodeFunc
	f.statusRepo.GetByCodeFunc = func(ctx context.Context, code string) (*catalog.Status, error) {
		if code == s.Code() {
			return s, nil
		}
		if prevByCode != nil {
			return prevByCode(ctx, code)
		}
		return nil, nil
	}
}

func TestChangeStatus_ManagerMovesTicket(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, manager, current)

	inProgress := fixtureStatus(t, 2, "in_progress", false, false, false)
	f.addStatus(inProgress)

	var systemComments []*ticket.Comment
	f.commentRepo.SaveFunc = func(ctx context.Context, c *ticket.Comment) error {
		systemComments = append(systemComments, c)
		return c.SetID(uint(len(systemComments)))
	}

	uc := NewChangeStatusUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	result, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 7, AgentID: 20, StatusID: 2})
	require.NoError(t, err)

	assert.Equal(t, uint(2), result.StatusID)
	assert.Equal(t, uint(2), tk.StatusID())
	require.Len(t, systemComments, 1)
	assert.True(t, systemComments[0].IsSystem())
	assert.Contains(t, systemComments[0].Body(), "Status changed from new to in_progress")
}

func TestChangeStatus_ResolvedTargetRequiresComment(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, manager, current)
	f.addStatus(fixtureStatus(t, 3, "resolved", false, true, false))

	uc := NewChangeStatusUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 7, AgentID: 20, StatusID: 3})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Equal(t, uint(1), tk.StatusID(), "status must not change")
}

func TestChangeStatus_ResolvedStampsTimestampAndNotifies(t *testing.T) {
	manager := fixtureAgent(t, 20, agent.RoleProjectManager, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, manager, current)
	f.addStatus(fixtureStatus(t, 3, "resolved", false, true, false))

	resolvedNotified := false
	f.notifier.TicketResolvedFunc = func(ctx context.Context, tk *ticket.Ticket, comment string) {
		resolvedNotified = true
	}

	uc := NewChangeStatusUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID: 7, AgentID: 20, StatusID: 3, Comment: "Replaced the fuser",
	})
	require.NoError(t, err)

	assert.NotNil(t, tk.ResolvedAt())
	assert.True(t, resolvedNotified)
}

func TestChangeStatus_PlainAgentForbidden(t *testing.T) {
	member := fixtureAgent(t, 10, agent.RoleAgent, []uint{1})
	current := fixtureStatus(t, 1, "new", true, false, false)
	tk := fixtureTicket(t, 7, 1, 1, nil)
	f := newGateFixture(t, tk, member, current)
	f.addStatus(fixtureStatus(t, 2, "in_progress", false, false, false))

	uc := NewChangeStatusUseCase(f.ticketRepo, f.agentRepo, f.projectRepo, f.statusRepo, f.commentRepo, f.notifier, testLogger())
	_, err := uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 7, AgentID: 10, StatusID: 2})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}
