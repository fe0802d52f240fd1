package mappers

import (
	"fmt"

	"deskhub/internal/domain/agent"
	"deskhub/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *agent.Agent) *models.AgentModel
	// ToEntity reconstructs the agent with the given project memberships. The
	// repository loads the join rows separately.
	ToEntity(m *models.AgentModel, projectIDs []uint) (*agent.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (am *AgentMapperImpl) ToModel(a *agent.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:           a.ID(),
		Username:     a.Username(),
		Email:        a.Email(),
		FullName:     a.FullName(),
		PasswordHash: a.PasswordHash(),
		Role:         string(a.Role()),
		Active:       a.IsActive(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func (am *AgentMapperImpl) ToEntity(m *models.AgentModel, projectIDs []uint) (*agent.Agent, error) {
	entity, err := agent.ReconstructAgent(
		m.ID, m.Username, m.Email, m.FullName, m.PasswordHash,
		agent.Role(m.Role), m.Active, projectIDs, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map agent %d: %w", m.ID, err)
	}
	return entity, nil
}
