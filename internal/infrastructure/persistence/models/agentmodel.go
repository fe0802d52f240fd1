package models

import (
	"time"

	"deskhub/internal/shared/constants"
)

type AgentModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"size:254"`
	FullName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:20;not null;index"`
	Active       bool   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AgentModel) TableName() string { return constants.TableAgents }

// AgentProjectModel is the membership join row. No gorm association; the
// repository maintains it explicitly.
type AgentProjectModel struct {
	ID        uint `gorm:"primaryKey"`
	AgentID   uint `gorm:"not null;uniqueIndex:uniq_agent_project"`
	ProjectID uint `gorm:"not null;uniqueIndex:uniq_agent_project;index"`
	CreatedAt time.Time
}

func (AgentProjectModel) TableName() string { return constants.TableAgentProjects }
