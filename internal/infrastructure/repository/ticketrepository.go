package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"deskhub/internal/domain/ticket"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
	apperrors "deskhub/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if isDuplicateKey(err) {
			return apperrors.NewConflictError(
				"ticket number collision, please retry",
				t.DisplayID(),
			)
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select(
			"Title", "Description", "ProjectID", "StatusID", "PriorityID",
			"CategoryID", "AssigneeID", "CustomFormData", "UpdatedAt",
			"ResolvedAt", "ClosedAt",
		).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByDisplayID is case-insensitive so reporters can paste their ticket
// number in any casing.
func (r *TicketRepository) GetByDisplayID(ctx context.Context, displayID string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("UPPER(display_id) = ?", strings.ToUpper(displayID)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket by display ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.TicketModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []*models.TicketModel
	listQuery := query.Order("created_at DESC, id DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}
	if err := listQuery.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) applyFilter(query *gorm.DB, filter ticket.Filter) *gorm.DB {
	if filter.ScopeProjectIDs != nil {
		query = query.Where("project_id IN ?", filter.ScopeProjectIDs)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.PriorityID != nil {
		query = query.Where("priority_id = ?", *filter.PriorityID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Unassigned {
		query = query.Where("assignee_id IS NULL")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"display_id LIKE ? OR title LIKE ? OR description LIKE ? OR reporter_name LIKE ? OR reporter_email LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.ResolvedAfter != nil {
		query = query.Where("resolved_at >= ?", *filter.ResolvedAfter)
	}

	// Completed means the current status carries a resolved or closed flag,
	// reflected in the derived timestamps. When both toggles are on or both
	// off, no lifecycle filter applies.
	switch {
	case filter.ShowActive && !filter.ShowCompleted:
		query = query.Where("resolved_at IS NULL AND closed_at IS NULL")
	case filter.ShowCompleted && !filter.ShowActive:
		query = query.Where("resolved_at IS NOT NULL OR closed_at IS NOT NULL")
	}

	return query
}

// LastDisplayID returns the lexicographically highest display ID the project
// has under the prefix. The zero-padded sequence makes lexicographic and
// numeric order agree.
func (r *TicketRepository) LastDisplayID(ctx context.Context, projectID uint, prefix string) (string, error) {
	var last string
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.TicketModel{}).
		Where("project_id = ? AND display_id LIKE ?", projectID, prefix+"%").
		Order("display_id DESC").
		Limit(1).
		Pluck("display_id", &last).Error
	if err != nil {
		return "", fmt.Errorf("failed to read last display ID: %w", err)
	}

	return last, nil
}

func (r *TicketRepository) CountForProjectYear(ctx context.Context, projectID uint, year int) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.TicketModel{}).
		Where("project_id = ? AND display_id LIKE ?", projectID, fmt.Sprintf("%%-%d-%%", year)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count project tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.TicketModel{}).
		Where("display_id LIKE ?", prefix+"%").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets by prefix: %w", err)
	}

	return count, nil
}

// Reference counts used by the admin catalog to refuse deletions that would
// orphan tickets.

func (r *TicketRepository) CountByProject(ctx context.Context, projectID uint) (int64, error) {
	return r.countWhere(ctx, "project_id = ?", projectID)
}

func (r *TicketRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return r.countWhere(ctx, "category_id = ?", categoryID)
}

func (r *TicketRepository) CountByStatus(ctx context.Context, statusID uint) (int64, error) {
	return r.countWhere(ctx, "status_id = ?", statusID)
}

func (r *TicketRepository) CountByPriority(ctx context.Context, priorityID uint) (int64, error) {
	return r.countWhere(ctx, "priority_id = ?", priorityID)
}

func (r *TicketRepository) countWhere(ctx context.Context, cond string, arg interface{}) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Where(cond, arg).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

// isDuplicateKey detects unique-constraint violations across the drivers in
// use. MySQL reports "Duplicate entry", SQLite "UNIQUE constraint failed".
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
