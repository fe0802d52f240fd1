package catalog

import (
	"fmt"
	"time"
)

// FormField binds a FieldTemplate to a Category with category-specific
// overrides. The effective label and help text fall back to the template
// defaults when no override is set.
type FormField struct {
	id           uint
	categoryID   uint
	templateID   uint
	template     *FieldTemplate
	labelOvr     string
	helpOvr      string
	required     bool
	displayOrder int
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewFormField(categoryID, templateID uint, labelOvr, helpOvr string, required bool, displayOrder int) (*FormField, error) {
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if templateID == 0 {
		return nil, fmt.Errorf("field template ID is required")
	}

	now := time.Now()
	return &FormField{
		categoryID:   categoryID,
		templateID:   templateID,
		labelOvr:     labelOvr,
		helpOvr:      helpOvr,
		required:     required,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructFormField(
	id uint,
	categoryID, templateID uint,
	labelOvr, helpOvr string,
	required bool,
	displayOrder int,
	active bool,
	createdAt, updatedAt time.Time,
) (*FormField, error) {
	if id == 0 {
		return nil, fmt.Errorf("form field ID cannot be zero")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if templateID == 0 {
		return nil, fmt.Errorf("field template ID is required")
	}

	return &FormField{
		id:           id,
		categoryID:   categoryID,
		templateID:   templateID,
		labelOvr:     labelOvr,
		helpOvr:      helpOvr,
		required:     required,
		displayOrder: displayOrder,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (f *FormField) ID() uint              { return f.id }
func (f *FormField) CategoryID() uint      { return f.categoryID }
func (f *FormField) TemplateID() uint      { return f.templateID }
func (f *FormField) LabelOverride() string { return f.labelOvr }
func (f *FormField) HelpOverride() string  { return f.helpOvr }
func (f *FormField) IsRequired() bool      { return f.required }
func (f *FormField) DisplayOrder() int     { return f.displayOrder }
func (f *FormField) IsActive() bool        { return f.active }
func (f *FormField) CreatedAt() time.Time  { return f.createdAt }
func (f *FormField) UpdatedAt() time.Time  { return f.updatedAt }

// Template returns the bound field template, or nil when not loaded.
func (f *FormField) Template() *FieldTemplate { return f.template }

// AttachTemplate sets the loaded template. Used by repositories.
func (f *FormField) AttachTemplate(t *FieldTemplate) {
	f.template = t
}

// Name returns the template's slug name. Panics are avoided: an unloaded
// template yields an empty name, which callers treat as a skippable field.
func (f *FormField) Name() string {
	if f.template == nil {
		return ""
	}
	return f.template.Name()
}

func (f *FormField) FieldType() FieldType {
	if f.template == nil {
		return ""
	}
	return f.template.FieldType()
}

// EffectiveLabel returns the override label, falling back to the template
// default.
func (f *FormField) EffectiveLabel() string {
	if f.labelOvr != "" {
		return f.labelOvr
	}
	if f.template != nil {
		return f.template.LabelDefault()
	}
	return ""
}

// EffectiveHelpText returns the override help text, falling back to the
// template default.
func (f *FormField) EffectiveHelpText() string {
	if f.helpOvr != "" {
		return f.helpOvr
	}
	if f.template != nil {
		return f.template.HelpDefault()
	}
	return ""
}

// EffectiveChoicesJSON returns the select choices of the bound template.
func (f *FormField) EffectiveChoicesJSON() string {
	if f.template == nil {
		return ""
	}
	return f.template.ChoicesJSON()
}

func (f *FormField) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("form field ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("form field ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *FormField) Update(labelOvr, helpOvr string, required bool, displayOrder int, active bool) {
	f.labelOvr = labelOvr
	f.helpOvr = helpOvr
	f.required = required
	f.displayOrder = displayOrder
	f.active = active
	f.updatedAt = time.Now()
}
