// Package repository provides the GORM-backed implementations of the domain
// repository interfaces.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(gdb *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     gdb,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *catalog.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProjectRepository) Update(ctx context.Context, p *catalog.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Description", "ContactEmail", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.ProjectModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*catalog.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*catalog.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProjectRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.Project, error) {
	var modelList []*models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
