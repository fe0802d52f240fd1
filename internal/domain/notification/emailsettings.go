package notification

import (
	"fmt"
	"strings"
	"time"
)

// EmailSettings is the admin-configured SMTP transport, stored in the
// database so it can be changed without a restart. The mail service reloads
// when it changes.
type EmailSettings struct {
	id          uint
	host        string
	port        int
	username    string
	password    string
	fromAddress string
	fromName    string
	enabled     bool
	updatedAt   time.Time
}

func NewEmailSettings(host string, port int, username, password, fromAddress, fromName string, enabled bool) (*EmailSettings, error) {
	if enabled {
		if strings.TrimSpace(host) == "" {
			return nil, fmt.Errorf("SMTP host is required")
		}
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid SMTP port: %d", port)
		}
		if strings.TrimSpace(fromAddress) == "" {
			return nil, fmt.Errorf("from address is required")
		}
	}

	return &EmailSettings{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		fromAddress: fromAddress,
		fromName:    fromName,
		enabled:     enabled,
		updatedAt:   time.Now(),
	}, nil
}

func ReconstructEmailSettings(
	id uint,
	host string, port int,
	username, password, fromAddress, fromName string,
	enabled bool,
	updatedAt time.Time,
) (*EmailSettings, error) {
	if id == 0 {
		return nil, fmt.Errorf("email settings ID cannot be zero")
	}

	return &EmailSettings{
		id:          id,
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		fromAddress: fromAddress,
		fromName:    fromName,
		enabled:     enabled,
		updatedAt:   updatedAt,
	}, nil
}

func (s *EmailSettings) ID() uint             { return s.id }
func (s *EmailSettings) Host() string         { return s.host }
func (s *EmailSettings) Port() int            { return s.port }
func (s *EmailSettings) Username() string     { return s.username }
func (s *EmailSettings) Password() string     { return s.password }
func (s *EmailSettings) FromAddress() string  { return s.fromAddress }
func (s *EmailSettings) FromName() string     { return s.fromName }
func (s *EmailSettings) IsEnabled() bool      { return s.enabled }
func (s *EmailSettings) UpdatedAt() time.Time { return s.updatedAt }

func (s *EmailSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("email settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("email settings ID cannot be zero")
	}
	s.id = id
	return nil
}
