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

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
}

func NewAttachmentRepository(gdb *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewAttachmentMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

// ListByTicket returns the ticket-level attachments, excluding those attached
// to a specific comment.
func (r *AttachmentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var modelList []*models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ? AND comment_id IS NULL", ticketID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket attachments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *AttachmentRepository) ListByComment(ctx context.Context, commentID uint) ([]*ticket.Attachment, error) {
	var modelList []*models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("comment_id = ?", commentID).
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list comment attachments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
