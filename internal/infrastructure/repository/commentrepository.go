package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/ticket"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
}

func NewCommentRepository(gdb *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     gdb,
		mapper: mappers.NewCommentMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint, publicOnly bool) ([]*ticket.Comment, error) {
	var modelList []*models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC")
	if publicOnly {
		query = query.Where("internal = ?", false)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
