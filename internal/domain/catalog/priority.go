package catalog

import (
	"fmt"
	"strings"
	"time"
)

// PriorityCodeNormal is the fallback priority applied to tickets created
// without one.
const PriorityCodeNormal = "normal"

type Priority struct {
	id        uint
	name      string
	code      string
	color     string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

func NewPriority(name, code, color string, sortOrder int) (*Priority, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, fmt.Errorf("priority name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("priority code is required")
	}
	if color == "" {
		color = "#FFFFFF"
	}
	if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("invalid priority color: %s", color)
	}

	now := time.Now()
	return &Priority{
		name:      name,
		code:      code,
		color:     color,
		sortOrder: sortOrder,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPriority(
	id uint,
	name, code, color string,
	sortOrder int,
	createdAt, updatedAt time.Time,
) (*Priority, error) {
	if id == 0 {
		return nil, fmt.Errorf("priority ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("priority name is required")
	}
	if code == "" {
		return nil, fmt.Errorf("priority code is required")
	}

	return &Priority{
		id:        id,
		name:      name,
		code:      code,
		color:     color,
		sortOrder: sortOrder,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Priority) ID() uint             { return p.id }
func (p *Priority) Name() string         { return p.name }
func (p *Priority) Code() string         { return p.code }
func (p *Priority) Color() string        { return p.color }
func (p *Priority) SortOrder() int       { return p.sortOrder }
func (p *Priority) CreatedAt() time.Time { return p.createdAt }
func (p *Priority) UpdatedAt() time.Time { return p.updatedAt }

func (p *Priority) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("priority ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("priority ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Priority) Update(name, color string, sortOrder int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("priority name is required")
	}
	if color != "" && !hexColorPattern.MatchString(color) {
		return fmt.Errorf("invalid priority color: %s", color)
	}
	p.name = name
	if color != "" {
		p.color = color
	}
	p.sortOrder = sortOrder
	p.updatedAt = time.Now()
	return nil
}
