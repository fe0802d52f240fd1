package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/feedback"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
)

type FeedbackRepository struct {
	db     *gorm.DB
	mapper mappers.FeedbackMapper
}

func NewFeedbackRepository(gdb *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db:     gdb,
		mapper: mappers.NewFeedbackMapper(),
	}
}

func (r *FeedbackRepository) Save(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FeedbackRepository) Update(ctx context.Context, f *feedback.Feedback) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FeedbackModel{}).
		Where("id = ?", model.ID).
		Select("Reviewed", "ReviewerNotes").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update feedback: %w", result.Error)
	}

	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uint) (*feedback.Feedback, error) {
	var model models.FeedbackModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FeedbackRepository) List(ctx context.Context, unreviewedOnly bool, page, pageSize int) ([]*feedback.Feedback, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.FeedbackModel{})
	if unreviewedOnly {
		query = query.Where("reviewed = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	var modelList []*models.FeedbackModel
	listQuery := query.Order("submitted_at DESC, id DESC")
	if pageSize > 0 {
		listQuery = listQuery.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	if err := listQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", err)
	}

	entries, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
