package notification

import (
	"context"
	"net/mail"
	"time"

	"deskhub/internal/domain/notification"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type CreateTemplateCommand struct {
	EventType string
	Name      string
	Subject   string
	Body      string
}

type UpdateTemplateCommand struct {
	ID      uint
	Name    string
	Subject string
	Body    string
	Enabled bool
}

type TemplateDTO struct {
	ID        uint      `json:"id"`
	EventType string    `json:"event_type"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toTemplateDTO(t *notification.Template) *TemplateDTO {
	return &TemplateDTO{
		ID:        t.ID(),
		EventType: t.EventType().String(),
		Name:      t.Name(),
		Subject:   t.Subject(),
		Body:      t.Body(),
		Enabled:   t.IsEnabled(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

type UpdateEmailSettingsCommand struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	Enabled     bool
}

// EmailSettingsDTO never carries the SMTP password back to the client.
type EmailSettingsDTO struct {
	Host        string    `json:"host"`
	Port        int       `json:"port"`
	Username    string    `json:"username"`
	FromAddress string    `json:"from_address"`
	FromName    string    `json:"from_name"`
	Enabled     bool      `json:"enabled"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEmailSettingsDTO(s *notification.EmailSettings) *EmailSettingsDTO {
	return &EmailSettingsDTO{
		Host:        s.Host(),
		Port:        s.Port(),
		Username:    s.Username(),
		FromAddress: s.FromAddress(),
		FromName:    s.FromName(),
		Enabled:     s.IsEnabled(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

// AdminService manages notification templates and the stored SMTP settings.
type AdminService struct {
	templateRepo notification.TemplateRepository
	settingsRepo notification.EmailSettingsRepository
	sender       EmailSender
	reloader     SettingsReloader
	logger       logger.Interface
}

func NewAdminService(
	templateRepo notification.TemplateRepository,
	settingsRepo notification.EmailSettingsRepository,
	sender EmailSender,
	reloader SettingsReloader,
	logger logger.Interface,
) *AdminService {
	return &AdminService{
		templateRepo: templateRepo,
		settingsRepo: settingsRepo,
		sender:       sender,
		reloader:     reloader,
		logger:       logger,
	}
}

func (s *AdminService) CreateTemplate(ctx context.Context, cmd CreateTemplateCommand) (*TemplateDTO, error) {
	eventType := notification.EventType(cmd.EventType)
	if !eventType.IsValid() {
		return nil, errors.NewValidationError("unknown event type")
	}

	existing, err := s.templateRepo.GetByEventType(ctx, eventType)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("a template for this event already exists")
	}

	tpl, err := notification.NewTemplate(eventType, cmd.Name, cmd.Subject, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.templateRepo.Save(ctx, tpl); err != nil {
		s.logger.Errorw("failed to save notification template", "event", cmd.EventType, "error", err)
		return nil, err
	}
	s.logger.Infow("notification template created", "template_id", tpl.ID(), "event", cmd.EventType)
	return toTemplateDTO(tpl), nil
}

func (s *AdminService) UpdateTemplate(ctx context.Context, cmd UpdateTemplateCommand) (*TemplateDTO, error) {
	tpl, err := s.templateRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, errors.NewNotFoundError("notification template not found")
	}

	if err := tpl.Update(cmd.Name, cmd.Subject, cmd.Body, cmd.Enabled); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.templateRepo.Update(ctx, tpl); err != nil {
		s.logger.Errorw("failed to update notification template", "template_id", cmd.ID, "error", err)
		return nil, err
	}
	return toTemplateDTO(tpl), nil
}

func (s *AdminService) DeleteTemplate(ctx context.Context, id uint) error {
	tpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tpl == nil {
		return errors.NewNotFoundError("notification template not found")
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		s.logger.Errorw("failed to delete notification template", "template_id", id, "error", err)
		return err
	}
	s.logger.Infow("notification template deleted", "template_id", id)
	return nil
}

func (s *AdminService) ListTemplates(ctx context.Context) ([]*TemplateDTO, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*TemplateDTO, 0, len(templates))
	for _, t := range templates {
		result = append(result, toTemplateDTO(t))
	}
	return result, nil
}

// GetEmailSettings returns the stored SMTP settings without the password, or
// nil when email has never been configured.
func (s *AdminService) GetEmailSettings(ctx context.Context) (*EmailSettingsDTO, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toEmailSettingsDTO(settings), nil
}

// UpdateEmailSettings replaces the SMTP settings and reloads the mail
// transport. A blank password keeps the previously stored one.
func (s *AdminService) UpdateEmailSettings(ctx context.Context, cmd UpdateEmailSettingsCommand) (*EmailSettingsDTO, error) {
	password := cmd.Password
	if password == "" {
		if existing, err := s.settingsRepo.Get(ctx); err == nil && existing != nil {
			password = existing.Password()
		}
	}

	settings, err := notification.NewEmailSettings(cmd.Host, cmd.Port, cmd.Username, password, cmd.FromAddress, cmd.FromName, cmd.Enabled)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		s.logger.Errorw("failed to save email settings", "error", err)
		return nil, err
	}

	if s.reloader != nil {
		if err := s.reloader.Reload(ctx); err != nil {
			s.logger.Warnw("mail transport reload failed", "error", err)
		}
	}

	s.logger.Infow("email settings updated", "host", cmd.Host, "enabled", cmd.Enabled)
	return toEmailSettingsDTO(settings), nil
}

// SendTestEmail verifies the current SMTP configuration end to end.
func (s *AdminService) SendTestEmail(ctx context.Context, to string) error {
	if _, err := mail.ParseAddress(to); err != nil {
		return errors.NewValidationError("enter a valid email address")
	}

	err := s.sender.Send(ctx, []string{to},
		"Test email",
		"<p>This is a test email confirming the notification settings work.</p>")
	if err != nil {
		s.logger.Warnw("test email failed", "to", to, "error", err)
		return errors.NewBadRequestError("test email failed: " + err.Error())
	}

	s.logger.Infow("test email sent", "to", to)
	return nil
}
