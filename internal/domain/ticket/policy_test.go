package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policyTicket(t *testing.T, projectID uint, assigneeID *uint) *Ticket {
	t.Helper()
	tk, err := NewTicket("Printer jam", "Paper stuck", validReporter(), projectID, nil, nil)
	require.NoError(t, err)
	if assigneeID != nil {
		require.NoError(t, tk.AssignTo(*assigneeID))
	}
	return tk
}

func uintPtr(v uint) *uint { return &v }

func TestEvaluateActions(t *testing.T) {
	member := Actor{AgentID: 10, MemberProjects: []uint{1}, ActiveMemberProjects: []uint{1}}
	manager := Actor{AgentID: 20, ProjectManager: true, MemberProjects: []uint{1}, ActiveMemberProjects: []uint{1}}
	admin := Actor{AgentID: 30, Privileged: true}
	outsider := Actor{AgentID: 40, MemberProjects: []uint{2}, ActiveMemberProjects: []uint{2}}

	tests := []struct {
		name           string
		actor          Actor
		ticket         *Ticket
		projectActive  bool
		statusResolved bool
		statusClosed   bool
		want           Actions
	}{
		{
			name:          "member sees unassigned ticket and may claim it",
			actor:         member,
			ticket:        policyTicket(t, 1, nil),
			projectActive: true,
			want: Actions{
				CanView:    true,
				CanComment: true,
				CanClaim:   true,
			},
		},
		{
			name:          "member cannot claim in an inactive project",
			actor:         member,
			ticket:        policyTicket(t, 1, nil),
			projectActive: false,
			want: Actions{
				CanView:    true,
				CanComment: true,
			},
		},
		{
			name:          "assignee may resolve, reroute and close with remarks",
			actor:         member,
			ticket:        policyTicket(t, 1, uintPtr(10)),
			projectActive: true,
			want: Actions{
				CanView:             true,
				CanComment:          true,
				CanChangeProject:    true,
				CanResolve:          true,
				CanCloseWithRemarks: true,
			},
		},
		{
			name:           "assignee may close a resolved ticket but not re-resolve it",
			actor:          member,
			ticket:         policyTicket(t, 1, uintPtr(10)),
			projectActive:  true,
			statusResolved: true,
			want: Actions{
				CanView:             true,
				CanComment:          true,
				CanChangeProject:    true,
				CanClose:            true,
				CanCloseWithRemarks: true,
			},
		},
		{
			name:          "manager controls status, priority and assignment",
			actor:         manager,
			ticket:        policyTicket(t, 1, uintPtr(10)),
			projectActive: true,
			want: Actions{
				CanView:           true,
				CanComment:        true,
				CanChangeStatus:   true,
				CanChangePriority: true,
				CanChangeProject:  true,
				CanReassign:       true,
			},
		},
		{
			name:           "manager may close a resolved ticket assigned to someone else",
			actor:          manager,
			ticket:         policyTicket(t, 1, uintPtr(10)),
			projectActive:  true,
			statusResolved: true,
			want: Actions{
				CanView:           true,
				CanComment:        true,
				CanChangeStatus:   true,
				CanChangePriority: true,
				CanChangeProject:  true,
				CanReassign:       true,
				CanClose:          true,
			},
		},
		{
			name:          "admin is not scoped to project membership",
			actor:         admin,
			ticket:        policyTicket(t, 1, uintPtr(10)),
			projectActive: true,
			want: Actions{
				CanView:           true,
				CanComment:        true,
				CanChangeStatus:   true,
				CanChangePriority: true,
				CanChangeProject:  true,
				CanReassign:       true,
			},
		},
		{
			name:          "outsider sees nothing",
			actor:         outsider,
			ticket:        policyTicket(t, 1, nil),
			projectActive: true,
			want:          Actions{},
		},
		{
			name:          "closed ticket locks rerouting and remarks",
			actor:         member,
			ticket:        policyTicket(t, 1, uintPtr(10)),
			projectActive: true,
			statusClosed:  true,
			want: Actions{
				CanView:    true,
				CanComment: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateActions(tt.actor, tt.ticket, tt.projectActive, tt.statusResolved, tt.statusClosed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActorMembershipScoping(t *testing.T) {
	// An agent in an inactive project can still administer tickets there but
	// the visibility scope excludes them.
	actor := Actor{
		AgentID:              10,
		ProjectManager:       true,
		MemberProjects:       []uint{1, 2},
		ActiveMemberProjects: []uint{1},
	}

	tk := policyTicket(t, 2, nil)
	acts := EvaluateActions(actor, tk, false, false, false)

	assert.False(t, acts.CanView)
	assert.True(t, acts.CanChangeStatus)
}
