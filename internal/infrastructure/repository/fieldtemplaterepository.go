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

type FieldTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.FieldTemplateMapper
}

func NewFieldTemplateRepository(gdb *gorm.DB) *FieldTemplateRepository {
	return &FieldTemplateRepository{
		db:     gdb,
		mapper: mappers.NewFieldTemplateMapper(),
	}
}

func (r *FieldTemplateRepository) Save(ctx context.Context, t *catalog.FieldTemplate) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save field template: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *FieldTemplateRepository) Update(ctx context.Context, t *catalog.FieldTemplate) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FieldTemplateModel{}).
		Where("id = ?", model.ID).
		Select("Name", "LabelDefault", "FieldType", "HelpDefault", "ChoicesJSON", "Active", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update field template: %w", result.Error)
	}

	return nil
}

func (r *FieldTemplateRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.FieldTemplateModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete field template: %w", err)
	}
	return nil
}

func (r *FieldTemplateRepository) GetByID(ctx context.Context, id uint) (*catalog.FieldTemplate, error) {
	var model models.FieldTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get field template: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FieldTemplateRepository) GetByName(ctx context.Context, name string) (*catalog.FieldTemplate, error) {
	var model models.FieldTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get field template by name: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FieldTemplateRepository) List(ctx context.Context, activeOnly bool) ([]*catalog.FieldTemplate, error) {
	var modelList []*models.FieldTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list field templates: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
