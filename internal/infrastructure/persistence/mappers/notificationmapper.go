package mappers

import (
	"fmt"

	"deskhub/internal/domain/notification"
	"deskhub/internal/infrastructure/persistence/models"
)

type NotificationTemplateMapper interface {
	ToModel(t *notification.Template) *models.NotificationTemplateModel
	ToEntity(m *models.NotificationTemplateModel) (*notification.Template, error)
	ToEntities(ms []*models.NotificationTemplateModel) ([]*notification.Template, error)
}

type NotificationTemplateMapperImpl struct{}

func NewNotificationTemplateMapper() NotificationTemplateMapper {
	return &NotificationTemplateMapperImpl{}
}

func (nm *NotificationTemplateMapperImpl) ToModel(t *notification.Template) *models.NotificationTemplateModel {
	return &models.NotificationTemplateModel{
		ID:        t.ID(),
		EventType: string(t.EventType()),
		Name:      t.Name(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		Enabled:   t.IsEnabled(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func (nm *NotificationTemplateMapperImpl) ToEntity(m *models.NotificationTemplateModel) (*notification.Template, error) {
	return notification.ReconstructTemplate(
		m.ID, notification.EventType(m.EventType), m.Name, m.Subject, m.Body,
		m.Enabled, m.CreatedAt, m.UpdatedAt,
	)
}

func (nm *NotificationTemplateMapperImpl) ToEntities(ms []*models.NotificationTemplateModel) ([]*notification.Template, error) {
	entities := make([]*notification.Template, 0, len(ms))
	for _, m := range ms {
		entity, err := nm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification template %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type EmailSettingsMapper interface {
	ToModel(s *notification.EmailSettings) *models.EmailSettingsModel
	ToEntity(m *models.EmailSettingsModel) (*notification.EmailSettings, error)
}

type EmailSettingsMapperImpl struct{}

func NewEmailSettingsMapper() EmailSettingsMapper {
	return &EmailSettingsMapperImpl{}
}

func (em *EmailSettingsMapperImpl) ToModel(s *notification.EmailSettings) *models.EmailSettingsModel {
	return &models.EmailSettingsModel{
		ID:          s.ID(),
		Host:        s.Host(),
		Port:        s.Port(),
		Username:    s.Username(),
		Password:    s.Password(),
		FromAddress: s.FromAddress(),
		FromName:    s.FromName(),
		Enabled:     s.IsEnabled(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (em *EmailSettingsMapperImpl) ToEntity(m *models.EmailSettingsModel) (*notification.EmailSettings, error) {
	return notification.ReconstructEmailSettings(
		m.ID, m.Host, m.Port, m.Username, m.Password, m.FromAddress, m.FromName,
		m.Enabled, m.UpdatedAt,
	)
}
