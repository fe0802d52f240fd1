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
	apperrors "deskhub/internal/shared/errors"
)

type StatusRepository struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
}

func NewStatusRepository(gdb *gorm.DB) *StatusRepository {
	return &StatusRepository{
		db:     gdb,
		mapper: mappers.NewStatusMapper(),
	}
}

func (r *StatusRepository) Save(ctx context.Context, s *catalog.Status) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save status: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *StatusRepository) Update(ctx context.Context, s *catalog.Status) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StatusModel{}).
		Where("id = ?", model.ID).
		Select("Name", "Color", "IsDefault", "Resolved", "Closed", "SortOrder", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	return nil
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.StatusModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete status: %w", err)
	}
	return nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*catalog.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *StatusRepository) GetByCode(ctx context.Context, code string) (*catalog.Status, error) {
	var model models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status by code: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetDefault returns the single default status. Zero or multiple default rows
// indicate a corrupted registry and yield a typed error rather than a guess.
func (r *StatusRepository) GetDefault(ctx context.Context) (*catalog.Status, error) {
	var modelList []*models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("is_default = ?", true).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get default status: %w", err)
	}

	switch len(modelList) {
	case 1:
		return r.mapper.ToEntity(modelList[0])
	case 0:
		return nil, apperrors.NewInternalError("no default ticket status is configured")
	default:
		return nil, apperrors.NewInternalError("multiple default ticket statuses are configured")
	}
}

func (r *StatusRepository) List(ctx context.Context) ([]*catalog.Status, error) {
	var modelList []*models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("sort_order ASC, id ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
