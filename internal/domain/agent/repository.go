package agent

import "context"

type Repository interface {
	Save(ctx context.Context, a *Agent) error
	Update(ctx context.Context, a *Agent) error
	GetByID(ctx context.Context, id uint) (*Agent, error)
	GetByUsername(ctx context.Context, username string) (*Agent, error)
	List(ctx context.Context, activeOnly bool) ([]*Agent, error)
	// ListByProject returns the active agents who are members of the project.
	ListByProject(ctx context.Context, projectID uint) ([]*Agent, error)
	// ActiveProjectIDs returns the IDs of the agent's memberships whose
	// projects are currently active. Visibility scoping uses this, not the raw
	// membership list.
	ActiveProjectIDs(ctx context.Context, agentID uint) ([]uint, error)
}
