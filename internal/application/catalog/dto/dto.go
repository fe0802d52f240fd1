// Package dto carries the serializable shapes returned by the catalog
// services.
package dto

import (
	"time"

	"deskhub/internal/domain/catalog"
)

type ProjectDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	Code         string    `json:"code"`
	Slug         string    `json:"slug"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToProjectDTO(p *catalog.Project) *ProjectDTO {
	return &ProjectDTO{
		ID:           p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		ContactEmail: p.ContactEmail(),
		Code:         p.Code(),
		Slug:         p.Slug(),
		Active:       p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

type CategoryDTO struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCategoryDTO(c *catalog.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:          c.ID(),
		ProjectID:   c.ProjectID(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

type StatusDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
	Resolved  bool   `json:"resolved"`
	Closed    bool   `json:"closed"`
	SortOrder int    `json:"sort_order"`
}

func ToStatusDTO(s *catalog.Status) *StatusDTO {
	return &StatusDTO{
		ID:        s.ID(),
		Name:      s.Name(),
		Code:      s.Code(),
		Color:     s.Color(),
		IsDefault: s.IsDefault(),
		Resolved:  s.IsResolved(),
		Closed:    s.IsClosed(),
		SortOrder: s.SortOrder(),
	}
}

type PriorityDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

func ToPriorityDTO(p *catalog.Priority) *PriorityDTO {
	return &PriorityDTO{
		ID:        p.ID(),
		Name:      p.Name(),
		Code:      p.Code(),
		Color:     p.Color(),
		SortOrder: p.SortOrder(),
	}
}

type FieldTemplateDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	LabelDefault string `json:"label_default"`
	FieldType    string `json:"field_type"`
	HelpDefault  string `json:"help_default"`
	ChoicesJSON  string `json:"choices_json"`
	Active       bool   `json:"active"`
}

func ToFieldTemplateDTO(t *catalog.FieldTemplate) *FieldTemplateDTO {
	return &FieldTemplateDTO{
		ID:           t.ID(),
		Name:         t.Name(),
		LabelDefault: t.LabelDefault(),
		FieldType:    string(t.FieldType()),
		HelpDefault:  t.HelpDefault(),
		ChoicesJSON:  t.ChoicesJSON(),
		Active:       t.IsActive(),
	}
}

type FormFieldDTO struct {
	ID             uint   `json:"id"`
	CategoryID     uint   `json:"category_id"`
	TemplateID     uint   `json:"template_id"`
	TemplateName   string `json:"template_name,omitempty"`
	FieldType      string `json:"field_type,omitempty"`
	LabelOverride  string `json:"label_override"`
	HelpOverride   string `json:"help_override"`
	EffectiveLabel string `json:"effective_label"`
	Required       bool   `json:"required"`
	DisplayOrder   int    `json:"display_order"`
	Active         bool   `json:"active"`
}

func ToFormFieldDTO(f *catalog.FormField) *FormFieldDTO {
	d := &FormFieldDTO{
		ID:             f.ID(),
		CategoryID:     f.CategoryID(),
		TemplateID:     f.TemplateID(),
		LabelOverride:  f.LabelOverride(),
		HelpOverride:   f.HelpOverride(),
		EffectiveLabel: f.EffectiveLabel(),
		Required:       f.IsRequired(),
		DisplayOrder:   f.DisplayOrder(),
		Active:         f.IsActive(),
	}
	if tpl := f.Template(); tpl != nil {
		d.TemplateName = tpl.Name()
		d.FieldType = string(tpl.FieldType())
	}
	return d
}
