package ticket

// Actor describes the requesting agent as far as the permission policy cares:
// identity, privilege tier, managerial role, and project memberships.
type Actor struct {
	AgentID        uint
	Privileged     bool // system_admin
	ProjectManager bool
	// MemberProjects are all project memberships.
	MemberProjects []uint
	// ActiveMemberProjects are the memberships whose project is active.
	// Visibility scoping uses this subset.
	ActiveMemberProjects []uint
}

func (a Actor) isMemberOf(projectID uint) bool {
	for _, id := range a.MemberProjects {
		if id == projectID {
			return true
		}
	}
	return false
}

func (a Actor) isActiveMemberOf(projectID uint) bool {
	for _, id := range a.ActiveMemberProjects {
		if id == projectID {
			return true
		}
	}
	return false
}

// Actions is the per-request action eligibility map for one ticket.
type Actions struct {
	CanView             bool `json:"can_view"`
	CanComment          bool `json:"can_comment"`
	CanChangeStatus     bool `json:"can_change_status"`
	CanChangePriority   bool `json:"can_change_priority"`
	CanChangeProject    bool `json:"can_change_project"`
	CanReassign         bool `json:"can_reassign"`
	CanClaim            bool `json:"can_claim"`
	CanResolve          bool `json:"can_resolve"`
	CanClose            bool `json:"can_close"`
	CanCloseWithRemarks bool `json:"can_close_with_remarks"`
}

// EvaluateActions computes what the actor may do to the ticket. Privilege
// (system_admin) outranks everything; project managers unlock status,
// priority and reassignment inside their projects; plain members may claim
// unassigned tickets; the assignee may resolve and close their own.
func EvaluateActions(actor Actor, t *Ticket, projectActive, statusResolved, statusClosed bool) Actions {
	inProject := actor.isMemberOf(t.ProjectID())
	managesProject := inProject && actor.ProjectManager
	assignedToActor := t.IsAssignedTo(actor.AgentID)

	var acts Actions

	acts.CanView = actor.Privileged || actor.isActiveMemberOf(t.ProjectID())
	acts.CanComment = acts.CanView

	acts.CanChangeStatus = actor.Privileged || managesProject
	acts.CanChangePriority = actor.Privileged || managesProject
	acts.CanReassign = actor.Privileged || managesProject

	acts.CanClaim = t.IsUnassigned() && inProject && projectActive

	if !statusClosed {
		acts.CanChangeProject = actor.Privileged || managesProject || (assignedToActor && inProject)
	}

	acts.CanResolve = assignedToActor && !statusResolved && !statusClosed
	acts.CanCloseWithRemarks = assignedToActor && !statusClosed

	if statusResolved && !statusClosed {
		acts.CanClose = assignedToActor || managesProject || actor.Privileged
	}

	return acts
}
