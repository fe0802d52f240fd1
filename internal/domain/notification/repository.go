package notification

import "context"

type TemplateRepository interface {
	Save(ctx context.Context, t *Template) error
	Update(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Template, error)
	GetByEventType(ctx context.Context, eventType EventType) (*Template, error)
	List(ctx context.Context) ([]*Template, error)
}

type EmailSettingsRepository interface {
	// Get returns the single settings row, or a not-found error when email is
	// not configured yet.
	Get(ctx context.Context) (*EmailSettings, error)
	// Upsert creates or replaces the single settings row.
	Upsert(ctx context.Context, s *EmailSettings) error
}
