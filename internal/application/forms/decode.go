package forms

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"deskhub/internal/domain/catalog"
)

const dateLayout = "2006-01-02"

// DecodeSubmission validates the submitted values against the schema's dynamic
// fields and returns the JSON-ready custom_form_data object. On any failure it
// returns a field-keyed error map instead; nothing is persisted partially.
// File fields are collected as attachments elsewhere and never enter the JSON
// object.
func DecodeSubmission(schema *Schema, values map[string]string) (map[string]interface{}, map[string]string) {
	data := make(map[string]interface{})
	fieldErrors := make(map[string]string)

	for _, field := range schema.DynamicFields() {
		if field.Type == catalog.FieldTypeFile {
			continue
		}

		raw := strings.TrimSpace(values[field.Name])

		// A required checkbox must actually be checked.
		if field.Type == catalog.FieldTypeBool {
			checked := parseBool(raw)
			if field.Required && !checked {
				fieldErrors[field.Name] = "this field is required"
				continue
			}
			data[field.Name] = checked
			continue
		}

		if raw == "" {
			if field.Required {
				fieldErrors[field.Name] = "this field is required"
			}
			continue
		}

		value, err := decodeValue(field, raw)
		if err != nil {
			fieldErrors[field.Name] = err.Error()
			continue
		}
		data[field.Name] = value
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return data, nil
}

func decodeValue(field Field, raw string) (interface{}, error) {
	switch field.Type {
	case catalog.FieldTypeChar:
		if len(raw) > 255 {
			return nil, fmt.Errorf("value exceeds maximum length of 255 characters")
		}
		return raw, nil

	case catalog.FieldTypeText:
		return raw, nil

	case catalog.FieldTypeEmail:
		if _, err := mail.ParseAddress(raw); err != nil {
			return nil, fmt.Errorf("enter a valid email address")
		}
		return raw, nil

	case catalog.FieldTypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("enter a whole number")
		}
		return n, nil

	case catalog.FieldTypeDate:
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return nil, fmt.Errorf("enter a valid date in YYYY-MM-DD format")
		}
		return raw, nil

	case catalog.FieldTypeSelect:
		for _, c := range field.Choices {
			if c.Value == raw {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("select a valid choice")

	default:
		return raw, nil
	}
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}
