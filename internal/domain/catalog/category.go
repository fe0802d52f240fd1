package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Category groups tickets under a project and owns the ordered set of
// dynamic form-field bindings rendered on the intake form.
type Category struct {
	id          uint
	projectID   uint
	name        string
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
	fields      []*FormField
}

func NewCategory(projectID uint, name, description string) (*Category, error) {
	name = strings.TrimSpace(name)
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Category{
		projectID:   projectID,
		name:        name,
		description: description,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uint,
	projectID uint,
	name, description string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:          id,
		projectID:   projectID,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) ProjectID() uint      { return c.projectID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) IsActive() bool       { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// Fields returns the form-field bindings attached by the repository, ordered
// by display position.
func (c *Category) Fields() []*FormField {
	fieldsCopy := make([]*FormField, len(c.fields))
	copy(fieldsCopy, c.fields)
	return fieldsCopy
}

// AttachFields replaces the loaded field bindings. Used by repositories when
// reconstructing the aggregate.
func (c *Category) AttachFields(fields []*FormField) {
	c.fields = fields
}

// ActiveFields returns only the bindings active in this category, in display
// order.
func (c *Category) ActiveFields() []*FormField {
	var active []*FormField
	for _, f := range c.fields {
		if f.IsActive() {
			active = append(active, f)
		}
	}
	return active
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	c.name = name
	c.updatedAt = time.Now()
	return nil
}

func (c *Category) UpdateDescription(description string) {
	c.description = description
	c.updatedAt = time.Now()
}

func (c *Category) Activate() {
	c.active = true
	c.updatedAt = time.Now()
}

func (c *Category) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}
