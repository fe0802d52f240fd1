package dto

import (
	"time"

	"deskhub/internal/domain/agent"
)

type AgentDTO struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	ProjectIDs  []uint    `json:"project_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToAgentDTO(a *agent.Agent) *AgentDTO {
	return &AgentDTO{
		ID:          a.ID(),
		Username:    a.Username(),
		Email:       a.Email(),
		FullName:    a.FullName(),
		DisplayName: a.DisplayName(),
		Role:        a.Role().String(),
		Active:      a.IsActive(),
		ProjectIDs:  a.ProjectIDs(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}
