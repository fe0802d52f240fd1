// Package catalog holds the helpdesk reference data: projects, categories,
// statuses, priorities and the dynamic form-field configuration.
package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

type Project struct {
	id           uint
	name         string
	description  string
	contactEmail string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProject(name, description, contactEmail string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("project name exceeds maximum length of 150 characters")
	}

	now := time.Now()
	return &Project{
		name:         name,
		description:  description,
		contactEmail: contactEmail,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructProject(
	id uint,
	name, description, contactEmail string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	return &Project{
		id:           id,
		name:         name,
		description:  description,
		contactEmail: contactEmail,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) ContactEmail() string { return p.contactEmail }
func (p *Project) IsActive() bool       { return p.active }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

func (p *Project) UpdateDetails(description, contactEmail string) {
	p.description = description
	p.contactEmail = contactEmail
	p.updatedAt = time.Now()
}

func (p *Project) Activate() {
	p.active = true
	p.updatedAt = time.Now()
}

func (p *Project) Deactivate() {
	p.active = false
	p.updatedAt = time.Now()
}

// Code derives the three-letter ticket prefix from the project name: the first
// three alphanumeric runes uppercased, or "P<id>" when the name has none.
func (p *Project) Code() string {
	var runes []rune
	for _, r := range p.name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, unicode.ToUpper(r))
			if len(runes) == 3 {
				break
			}
		}
	}
	if len(runes) == 0 {
		code := fmt.Sprintf("P%d", p.id)
		if len(code) > 3 {
			code = code[:3]
		}
		return code
	}
	return string(runes)
}

// Slug returns the lowercased alphanumeric form of the name, used for
// attachment storage paths.
func (p *Project) Slug() string {
	var b strings.Builder
	for _, r := range p.name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	if b.Len() == 0 {
		return "unknown_project"
	}
	return b.String()
}
