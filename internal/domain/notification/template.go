// Package notification holds admin-editable email templates and SMTP settings.
package notification

import (
	"fmt"
	"strings"
	"time"
)

// EventType identifies the ticket lifecycle events a template can be bound to.
type EventType string

const (
	EventTicketCreated  EventType = "ticket_created"
	EventStatusChanged  EventType = "status_changed"
	EventTicketResolved EventType = "ticket_resolved"
	EventTicketClosed   EventType = "ticket_closed"
	EventCommentAdded   EventType = "comment_added"
)

var validEventTypes = map[EventType]bool{
	EventTicketCreated:  true,
	EventStatusChanged:  true,
	EventTicketResolved: true,
	EventTicketClosed:   true,
	EventCommentAdded:   true,
}

func (e EventType) IsValid() bool { return validEventTypes[e] }

func (e EventType) String() string { return string(e) }

// Template is an admin-configured notification email: a subject line and a
// markdown body with {{placeholder}} variables substituted at send time.
type Template struct {
	id        uint
	eventType EventType
	name      string
	subject   string
	body      string
	enabled   bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(eventType EventType, name, subject, body string) (*Template, error) {
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid notification event type: %s", eventType)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("template subject is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("template body is required")
	}

	now := time.Now()
	return &Template{
		eventType: eventType,
		name:      name,
		subject:   subject,
		body:      body,
		enabled:   true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTemplate(
	id uint,
	eventType EventType,
	name, subject, body string,
	enabled bool,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid notification event type: %s", eventType)
	}

	return &Template{
		id:        id,
		eventType: eventType,
		name:      name,
		subject:   subject,
		body:      body,
		enabled:   enabled,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Template) ID() uint             { return t.id }
func (t *Template) EventType() EventType { return t.eventType }
func (t *Template) Name() string         { return t.name }
func (t *Template) Subject() string      { return t.subject }
func (t *Template) Body() string         { return t.body }
func (t *Template) IsEnabled() bool      { return t.enabled }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

func (t *Template) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Template) Update(name, subject, body string, enabled bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("template name is required")
	}
	if strings.TrimSpace(subject) == "" {
		return fmt.Errorf("template subject is required")
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("template body is required")
	}
	t.name = name
	t.subject = subject
	t.body = body
	t.enabled = enabled
	t.updatedAt = time.Now()
	return nil
}

// Render substitutes {{key}} placeholders in the subject and body with the
// given variables. Unknown placeholders are left untouched.
func (t *Template) Render(vars map[string]string) (subject, body string) {
	subject = t.subject
	body = t.body
	for k, v := range vars {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, body
}
