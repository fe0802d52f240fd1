// Package forms assembles the dynamic intake form for a category and decodes
// submitted values against it.
package forms

import (
	"context"
	"encoding/json"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

// blankChoiceLabel renders as the placeholder option of an optional select.
const blankChoiceLabel = "---------"

// Field is one rendered form field descriptor.
type Field struct {
	Name     string                 `json:"name"`
	Label    string                 `json:"label"`
	HelpText string                 `json:"help_text,omitempty"`
	Type     catalog.FieldType      `json:"type"`
	Required bool                   `json:"required"`
	Choices  []catalog.SelectChoice `json:"choices,omitempty"`
	// Builtin marks the fixed intake fields that every category shares. Builtin
	// values land in ticket columns, not in custom_form_data.
	Builtin bool `json:"builtin"`
}

// Schema is the assembled intake form for one category: the fixed fields
// followed by the category's active dynamic bindings in display order.
type Schema struct {
	CategoryID uint    `json:"category_id"`
	ProjectID  uint    `json:"project_id"`
	Fields     []Field `json:"fields"`
}

// DynamicFields returns only the category-specific fields.
func (s *Schema) DynamicFields() []Field {
	var dynamic []Field
	for _, f := range s.Fields {
		if !f.Builtin {
			dynamic = append(dynamic, f)
		}
	}
	return dynamic
}

func builtinFields() []Field {
	return []Field{
		{Name: "title", Label: "Subject", Type: catalog.FieldTypeChar, Required: true, Builtin: true},
		{Name: "description", Label: "Describe your issue", Type: catalog.FieldTypeText, Required: true, Builtin: true},
		{Name: "reporter_name", Label: "Your name", Type: catalog.FieldTypeChar, Required: true, Builtin: true},
		{Name: "reporter_email", Label: "Your email", Type: catalog.FieldTypeEmail, Required: true, Builtin: true},
		{Name: "reporter_phone", Label: "Phone", Type: catalog.FieldTypeChar, Builtin: true},
		{Name: "building", Label: "Building", Type: catalog.FieldTypeChar, Builtin: true},
		{Name: "room", Label: "Room", Type: catalog.FieldTypeChar, Builtin: true},
		{Name: "department", Label: "Department", Type: catalog.FieldTypeChar, Builtin: true},
	}
}

// SchemaBuilder materializes intake form schemas from the category's field
// configuration.
type SchemaBuilder struct {
	projectRepo catalog.ProjectRepository
	logger      logger.Interface
}

func NewSchemaBuilder(projectRepo catalog.ProjectRepository, logger logger.Interface) *SchemaBuilder {
	return &SchemaBuilder{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Build assembles the form schema for the category. The category's project
// must exist and be active; inactive categories are rejected as well. Dynamic
// fields with an unloaded template or malformed select choices are skipped
// with a warning instead of failing the whole form.
func (b *SchemaBuilder) Build(ctx context.Context, category *catalog.Category) (*Schema, error) {
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}
	if !category.IsActive() {
		return nil, errors.NewNotFoundError("category is not accepting requests")
	}

	project, err := b.projectRepo.GetByID(ctx, category.ProjectID())
	if err != nil {
		return nil, err
	}
	if project == nil || !project.IsActive() {
		return nil, errors.NewNotFoundError("project is not accepting requests")
	}

	schema := &Schema{
		CategoryID: category.ID(),
		ProjectID:  project.ID(),
		Fields:     builtinFields(),
	}

	for _, binding := range category.ActiveFields() {
		if binding.Name() == "" {
			b.logger.Warnw("skipping form field with unloaded template",
				"category_id", category.ID(), "form_field_id", binding.ID())
			continue
		}

		field := Field{
			Name:     binding.Name(),
			Label:    binding.EffectiveLabel(),
			HelpText: binding.EffectiveHelpText(),
			Type:     binding.FieldType(),
			Required: binding.IsRequired(),
		}

		if field.Type == catalog.FieldTypeSelect {
			choices, err := parseChoices(binding.EffectiveChoicesJSON())
			if err != nil {
				b.logger.Warnw("skipping select field with malformed choices",
					"category_id", category.ID(), "field", field.Name, "error", err)
				continue
			}
			if !field.Required {
				choices = append([]catalog.SelectChoice{{Value: "", Label: blankChoiceLabel}}, choices...)
			}
			field.Choices = choices
		}

		schema.Fields = append(schema.Fields, field)
	}

	return schema, nil
}

func parseChoices(choicesJSON string) ([]catalog.SelectChoice, error) {
	var m map[string]string
	if err := json.Unmarshal([]byte(choicesJSON), &m); err != nil {
		return nil, err
	}
	return catalog.SortedChoices(m), nil
}
