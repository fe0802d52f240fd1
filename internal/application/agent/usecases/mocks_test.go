package usecases

import (
	"context"

	"deskhub/internal/domain/agent"
)

type mockAgentRepository struct {
	SaveFunc             func(ctx context.Context, a *agent.Agent) error
	UpdateFunc           func(ctx context.Context, a *agent.Agent) error
	GetByIDFunc          func(ctx context.Context, id uint) (*agent.Agent, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*agent.Agent, error)
	ListFunc             func(ctx context.Context, activeOnly bool) ([]*agent.Agent, error)
	ListByProjectFunc    func(ctx context.Context, projectID uint) ([]*agent.Agent, error)
	ActiveProjectIDsFunc func(ctx context.Context, agentID uint) ([]uint, error)
}

func (m *mockAgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockAgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockAgentRepository) List(ctx context.Context, activeOnly bool) ([]*agent.Agent, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *mockAgentRepository) ListByProject(ctx context.Context, projectID uint) ([]*agent.Agent, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockAgentRepository) ActiveProjectIDs(ctx context.Context, agentID uint) ([]uint, error) {
	if m.ActiveProjectIDsFunc != nil {
		return m.ActiveProjectIDsFunc(ctx, agentID)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(hash, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	return nil
}

type mockTokenService struct {
	GenerateFunc func(agentID uint, username, role string) (*TokenPair, error)
	RefreshFunc  func(refreshToken string) (*TokenPair, error)
}

func (m *mockTokenService) Generate(agentID uint, username, role string) (*TokenPair, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(agentID, username, role)
	}
	return &TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil
}

func (m *mockTokenService) Refresh(refreshToken string) (*TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(refreshToken)
	}
	return &TokenPair{AccessToken: "access2", RefreshToken: "refresh2", ExpiresIn: 3600}, nil
}
