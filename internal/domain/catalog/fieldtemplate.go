package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FieldType enumerates the input kinds a dynamic form field can take. The
// intake form materializes one concrete widget per kind.
type FieldType string

const (
	FieldTypeChar   FieldType = "char"
	FieldTypeText   FieldType = "text"
	FieldTypeEmail  FieldType = "email"
	FieldTypeInt    FieldType = "int"
	FieldTypeBool   FieldType = "bool"
	FieldTypeDate   FieldType = "date"
	FieldTypeSelect FieldType = "select"
	FieldTypeFile   FieldType = "file"
)

var validFieldTypes = map[FieldType]bool{
	FieldTypeChar:   true,
	FieldTypeText:   true,
	FieldTypeEmail:  true,
	FieldTypeInt:    true,
	FieldTypeBool:   true,
	FieldTypeDate:   true,
	FieldTypeSelect: true,
	FieldTypeFile:   true,
}

func (ft FieldType) String() string { return string(ft) }

func (ft FieldType) IsValid() bool { return validFieldTypes[ft] }

func NewFieldType(s string) (FieldType, error) {
	ft := FieldType(s)
	if !ft.IsValid() {
		return "", fmt.Errorf("invalid field type: %s", s)
	}
	return ft, nil
}

// SelectChoice is one option of a select field: a stored key and its
// user-facing label.
type SelectChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortedChoices converts the persisted key->label mapping into a deterministic
// choice list ordered by key.
func SortedChoices(m map[string]string) []SelectChoice {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	choices := make([]SelectChoice, 0, len(keys))
	for _, k := range keys {
		choices = append(choices, SelectChoice{Value: k, Label: m[k]})
	}
	return choices
}

var fieldSlugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// FieldTemplate is a reusable field definition in the field library. Categories
// bind templates through FormField rows with per-category overrides.
type FieldTemplate struct {
	id           uint
	name         string
	labelDefault string
	fieldType    FieldType
	helpDefault  string
	choicesJSON  string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewFieldTemplate(name, labelDefault string, fieldType FieldType, helpDefault, choicesJSON string) (*FieldTemplate, error) {
	name = strings.TrimSpace(name)
	if !fieldSlugPattern.MatchString(name) {
		return nil, fmt.Errorf("field name must be a lowercase slug: %q", name)
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("field name exceeds maximum length of 100 characters")
	}
	if strings.TrimSpace(labelDefault) == "" {
		return nil, fmt.Errorf("default label is required")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}
	if fieldType == FieldTypeSelect && strings.TrimSpace(choicesJSON) == "" {
		return nil, fmt.Errorf("select fields require choices")
	}

	now := time.Now()
	return &FieldTemplate{
		name:         name,
		labelDefault: labelDefault,
		fieldType:    fieldType,
		helpDefault:  helpDefault,
		choicesJSON:  choicesJSON,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructFieldTemplate(
	id uint,
	name, labelDefault string,
	fieldType FieldType,
	helpDefault, choicesJSON string,
	active bool,
	createdAt, updatedAt time.Time,
) (*FieldTemplate, error) {
	if id == 0 {
		return nil, fmt.Errorf("field template ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("field name is required")
	}
	if !fieldType.IsValid() {
		return nil, fmt.Errorf("invalid field type: %s", fieldType)
	}

	return &FieldTemplate{
		id:           id,
		name:         name,
		labelDefault: labelDefault,
		fieldType:    fieldType,
		helpDefault:  helpDefault,
		choicesJSON:  choicesJSON,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *FieldTemplate) ID() uint             { return t.id }
func (t *FieldTemplate) Name() string         { return t.name }
func (t *FieldTemplate) LabelDefault() string { return t.labelDefault }
func (t *FieldTemplate) FieldType() FieldType { return t.fieldType }
func (t *FieldTemplate) HelpDefault() string  { return t.helpDefault }
func (t *FieldTemplate) ChoicesJSON() string  { return t.choicesJSON }
func (t *FieldTemplate) IsActive() bool       { return t.active }
func (t *FieldTemplate) CreatedAt() time.Time { return t.createdAt }
func (t *FieldTemplate) UpdatedAt() time.Time { return t.updatedAt }

func (t *FieldTemplate) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("field template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("field template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *FieldTemplate) Update(labelDefault, helpDefault, choicesJSON string) error {
	if strings.TrimSpace(labelDefault) == "" {
		return fmt.Errorf("default label is required")
	}
	if t.fieldType == FieldTypeSelect && strings.TrimSpace(choicesJSON) == "" {
		return fmt.Errorf("select fields require choices")
	}
	t.labelDefault = labelDefault
	t.helpDefault = helpDefault
	t.choicesJSON = choicesJSON
	t.updatedAt = time.Now()
	return nil
}

func (t *FieldTemplate) Activate() {
	t.active = true
	t.updatedAt = time.Now()
}

func (t *FieldTemplate) Deactivate() {
	t.active = false
	t.updatedAt = time.Now()
}
