// Package email implements the SMTP transport behind the notification
// sender. The active configuration comes from the database-stored settings,
// with the static config file as bootstrap fallback, and is hot-reloaded when
// an admin saves new settings.
package email

import (
	"context"
	"fmt"
	"sync"

	"gopkg.in/gomail.v2"

	"deskhub/internal/domain/notification"
	"deskhub/internal/infrastructure/config"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type smtpConfig struct {
	host        string
	port        int
	username    string
	password    string
	fromAddress string
	fromName    string
	enabled     bool
}

// Manager holds the current SMTP dialer. It satisfies both the sender and the
// reloader side of the notification application package.
type Manager struct {
	settingsRepo notification.EmailSettingsRepository
	fallback     config.EmailConfig
	logger       logger.Interface

	mu     sync.RWMutex
	cfg    smtpConfig
	dialer *gomail.Dialer
}

func NewManager(
	settingsRepo notification.EmailSettingsRepository,
	fallback config.EmailConfig,
	logger logger.Interface,
) *Manager {
	return &Manager{
		settingsRepo: settingsRepo,
		fallback:     fallback,
		logger:       logger,
	}
}

// Reload rebuilds the dialer from the stored settings. Missing settings fall
// back to the static configuration.
func (m *Manager) Reload(ctx context.Context) error {
	cfg, err := m.loadConfig(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg = cfg
	if cfg.host == "" || !cfg.enabled {
		m.dialer = nil
		m.logger.Debugw("email transport disabled", "host", cfg.host, "enabled", cfg.enabled)
		return nil
	}

	m.dialer = gomail.NewDialer(cfg.host, cfg.port, cfg.username, cfg.password)
	m.logger.Infow("email transport configured", "host", cfg.host, "port", cfg.port, "from", cfg.fromAddress)
	return nil
}

func (m *Manager) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	m.mu.RLock()
	dialer := m.dialer
	cfg := m.cfg
	m.mu.RUnlock()

	if dialer == nil {
		return fmt.Errorf("email sending is disabled")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", cfg.fromAddress, cfg.fromName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *Manager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dialer != nil
}

func (m *Manager) loadConfig(ctx context.Context) (smtpConfig, error) {
	stored, err := m.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.IsNotFound(err) {
			return smtpConfig{}, err
		}
		return smtpConfig{
			host:        m.fallback.Host,
			port:        m.fallback.Port,
			username:    m.fallback.Username,
			password:    m.fallback.Password,
			fromAddress: m.fallback.FromAddress,
			fromName:    m.fallback.FromName,
			enabled:     m.fallback.Enabled,
		}, nil
	}

	return smtpConfig{
		host:        stored.Host(),
		port:        stored.Port(),
		username:    stored.Username(),
		password:    stored.Password(),
		fromAddress: stored.FromAddress(),
		fromName:    stored.FromName(),
		enabled:     stored.IsEnabled(),
	}, nil
}
