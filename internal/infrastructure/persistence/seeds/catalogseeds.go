// Package seeds inserts the baseline rows a fresh installation needs: the
// required status registry, priority levels, common field templates, default
// notification templates and the initial admin account.
package seeds

import (
	"gorm.io/gorm"

	"deskhub/internal/infrastructure/persistence/models"
)

// SeedStatuses inserts the required status codes. The console actions depend
// on these rows existing; names and colors remain admin-editable afterwards.
func SeedStatuses(db *gorm.DB) error {
	statuses := []models.StatusModel{
		{Name: "New", Code: "new", Color: "#d9534f", IsDefault: true, SortOrder: 10},
		{Name: "In Progress", Code: "in_progress", Color: "#f0ad4e", SortOrder: 20},
		{Name: "Resolved", Code: "resolved", Color: "#5cb85c", Resolved: true, SortOrder: 30},
		{Name: "Closed", Code: "closed", Color: "#777777", Closed: true, SortOrder: 40},
		{Name: "Closed with Remarks", Code: "closed_remarks", Color: "#5bc0de", Closed: true, SortOrder: 50},
	}

	for _, status := range statuses {
		if err := db.FirstOrCreate(&status, models.StatusModel{Code: status.Code}).Error; err != nil {
			return err
		}
	}

	return nil
}

func SeedPriorities(db *gorm.DB) error {
	priorities := []models.PriorityModel{
		{Name: "Low", Code: "low", Color: "#5bc0de", SortOrder: 10},
		{Name: "Normal", Code: "normal", Color: "#5cb85c", SortOrder: 20},
		{Name: "High", Code: "high", Color: "#f0ad4e", SortOrder: 30},
		{Name: "Urgent", Code: "urgent", Color: "#d9534f", SortOrder: 40},
	}

	for _, priority := range priorities {
		if err := db.FirstOrCreate(&priority, models.PriorityModel{Code: priority.Code}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedFieldTemplates inserts a starter set of reusable form fields that
// categories can bind.
func SeedFieldTemplates(db *gorm.DB) error {
	templates := []models.FieldTemplateModel{
		{
			Name:         "asset_tag",
			LabelDefault: "Asset Tag",
			FieldType:    "char",
			HelpDefault:  "The inventory sticker on the device, if present.",
			Active:       true,
		},
		{
			Name:         "operating_system",
			LabelDefault: "Operating System",
			FieldType:    "select",
			ChoicesJSON:  `{"windows":"Windows","macos":"macOS","linux":"Linux","other":"Other"}`,
			Active:       true,
		},
		{
			Name:         "error_message",
			LabelDefault: "Error Message",
			FieldType:    "text",
			HelpDefault:  "Paste the exact error text if one is shown.",
			Active:       true,
		},
		{
			Name:         "affected_users",
			LabelDefault: "Number of Affected Users",
			FieldType:    "int",
			Active:       true,
		},
		{
			Name:         "deadline",
			LabelDefault: "Needed By",
			FieldType:    "date",
			Active:       true,
		},
	}

	for _, template := range templates {
		if err := db.FirstOrCreate(&template, models.FieldTemplateModel{Name: template.Name}).Error; err != nil {
			return err
		}
	}

	return nil
}
