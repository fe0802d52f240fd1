package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/agent"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
)

// AgentRepository persists agents and their project memberships. Memberships
// live in the agent_projects join table and are replaced wholesale on every
// Save and Update so the rows always mirror the aggregate.
type AgentRepository struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(gdb *gorm.DB) *AgentRepository {
	return &AgentRepository{
		db:     gdb,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save agent: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return r.syncMemberships(tx, model.ID, a.ProjectIDs())
}

func (r *AgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AgentModel{}).
		Where("id = ?", model.ID).
		Select("Email", "FullName", "PasswordHash", "Role", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update agent: %w", result.Error)
	}

	return r.syncMemberships(tx, model.ID, a.ProjectIDs())
}

func (r *AgentRepository) GetByID(ctx context.Context, id uint) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	projectIDs, err := r.membershipIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&model, projectIDs)
}

func (r *AgentRepository) GetByUsername(ctx context.Context, username string) (*agent.Agent, error) {
	var model models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agent by username: %w", err)
	}

	projectIDs, err := r.membershipIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntity(&model, projectIDs)
}

func (r *AgentRepository) List(ctx context.Context, activeOnly bool) ([]*agent.Agent, error) {
	var modelList []*models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("username ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return r.toEntities(tx, modelList)
}

func (r *AgentRepository) ListByProject(ctx context.Context, projectID uint) ([]*agent.Agent, error) {
	var modelList []*models.AgentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Joins("JOIN agent_projects ON agent_projects.agent_id = agents.id").
		Where("agent_projects.project_id = ? AND agents.active = ?", projectID, true).
		Order("agents.username ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list project agents: %w", err)
	}

	return r.toEntities(tx, modelList)
}

// ActiveProjectIDs returns the agent's memberships filtered to projects that
// are currently active. Console scoping uses this so a deactivated project
// drops out of every member's view.
func (r *AgentRepository) ActiveProjectIDs(ctx context.Context, agentID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.AgentProjectModel{}).
		Joins("JOIN projects ON projects.id = agent_projects.project_id").
		Where("agent_projects.agent_id = ? AND projects.active = ?", agentID, true).
		Pluck("agent_projects.project_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load active project memberships: %w", err)
	}

	return ids, nil
}

func (r *AgentRepository) toEntities(tx *gorm.DB, modelList []*models.AgentModel) ([]*agent.Agent, error) {
	entities := make([]*agent.Agent, 0, len(modelList))
	for _, m := range modelList {
		projectIDs, err := r.membershipIDs(tx, m.ID)
		if err != nil {
			return nil, err
		}
		entity, err := r.mapper.ToEntity(m, projectIDs)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (r *AgentRepository) membershipIDs(tx *gorm.DB, agentID uint) ([]uint, error) {
	var ids []uint
	if err := tx.
		Model(&models.AgentProjectModel{}).
		Where("agent_id = ?", agentID).
		Pluck("project_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load agent memberships: %w", err)
	}
	return ids, nil
}

func (r *AgentRepository) syncMemberships(tx *gorm.DB, agentID uint, projectIDs []uint) error {
	if err := tx.
		Where("agent_id = ?", agentID).
		Delete(&models.AgentProjectModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear agent memberships: %w", err)
	}

	if len(projectIDs) == 0 {
		return nil
	}

	rows := make([]models.AgentProjectModel, 0, len(projectIDs))
	for _, pid := range projectIDs {
		rows = append(rows, models.AgentProjectModel{AgentID: agentID, ProjectID: pid})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save agent memberships: %w", err)
	}

	return nil
}
