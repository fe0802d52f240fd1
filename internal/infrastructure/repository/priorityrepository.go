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

type PriorityRepository struct {
	db     *gorm.DB
	mapper mappers.PriorityMapper
}

func NewPriorityRepository(gdb *gorm.DB) *PriorityRepository {
	return &PriorityRepository{
		db:     gdb,
		mapper: mappers.NewPriorityMapper(),
	}
}

func (r *PriorityRepository) Save(ctx context.Context, p *catalog.Priority) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save priority: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PriorityRepository) Update(ctx context.Context, p *catalog.Priority) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PriorityModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Color", "SortOrder", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update priority: %w", result.Error)
	}

	return nil
}

func (r *PriorityRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.PriorityModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete priority: %w", err)
	}
	return nil
}

func (r *PriorityRepository) GetByID(ctx context.Context, id uint) (*catalog.Priority, error) {
	var model models.PriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get priority: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriorityRepository) GetByCode(ctx context.Context, code string) (*catalog.Priority, error) {
	var model models.PriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get priority by code: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PriorityRepository) List(ctx context.Context) ([]*catalog.Priority, error) {
	var modelList []*models.PriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
