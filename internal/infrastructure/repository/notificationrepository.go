package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskhub/internal/domain/notification"
	"deskhub/internal/infrastructure/persistence/mappers"
	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/db"
	apperrors "deskhub/internal/shared/errors"
)

type NotificationTemplateRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationTemplateMapper
}

func NewNotificationTemplateRepository(gdb *gorm.DB) *NotificationTemplateRepository {
	return &NotificationTemplateRepository{
		db:     gdb,
		mapper: mappers.NewNotificationTemplateMapper(),
	}
}

func (r *NotificationTemplateRepository) Save(ctx context.Context, t *notification.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification template: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *NotificationTemplateRepository) Update(ctx context.Context, t *notification.Template) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.NotificationTemplateModel{}).
		Where("id = ?", model.ID).
		Select("EventType", "Name", "Subject", "Body", "Enabled", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification template: %w", result.Error)
	}

	return nil
}

func (r *NotificationTemplateRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.NotificationTemplateModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete notification template: %w", err)
	}
	return nil
}

func (r *NotificationTemplateRepository) GetByID(ctx context.Context, id uint) (*notification.Template, error) {
	var model models.NotificationTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification template: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByEventType returns a typed not-found error; the notifier treats that as
// "no template configured" and skips the event silently.
func (r *NotificationTemplateRepository) GetByEventType(ctx context.Context, eventType notification.EventType) (*notification.Template, error) {
	var model models.NotificationTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("event_type = ?", string(eventType)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				"no template configured for event",
				string(eventType),
			)
		}
		return nil, fmt.Errorf("failed to get notification template by event: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NotificationTemplateRepository) List(ctx context.Context) ([]*notification.Template, error) {
	var modelList []*models.NotificationTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("event_type ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list notification templates: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

type EmailSettingsRepository struct {
	db     *gorm.DB
	mapper mappers.EmailSettingsMapper
}

func NewEmailSettingsRepository(gdb *gorm.DB) *EmailSettingsRepository {
	return &EmailSettingsRepository{
		db:     gdb,
		mapper: mappers.NewEmailSettingsMapper(),
	}
}

// Get returns the single settings row. A typed not-found error means email
// has never been configured through the admin surface.
func (r *EmailSettingsRepository) Get(ctx context.Context) (*notification.EmailSettings, error) {
	var model models.EmailSettingsModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("email settings are not configured")
		}
		return nil, fmt.Errorf("failed to get email settings: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *EmailSettingsRepository) Upsert(ctx context.Context, s *notification.EmailSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	var existing models.EmailSettingsModel
	err := tx.Order("id ASC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		model.ID = 0
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create email settings: %w", err)
		}
		if s.ID() == 0 {
			return s.SetID(model.ID)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to load email settings: %w", err)
	}

	model.ID = existing.ID
	result := tx.
		Model(&models.EmailSettingsModel{}).
		Where("id = ?", existing.ID).
		Select("Host", "Port", "Username", "Password", "FromAddress", "FromName", "Enabled", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update email settings: %w", result.Error)
	}

	if s.ID() == 0 {
		return s.SetID(existing.ID)
	}
	return nil
}
