package seeds

import (
	"gorm.io/gorm"

	"deskhub/internal/infrastructure/persistence/models"
)

// SeedNotificationTemplates inserts a default template per lifecycle event.
// Bodies are markdown with {{placeholder}} variables.
func SeedNotificationTemplates(db *gorm.DB) error {
	templates := []models.NotificationTemplateModel{
		{
			EventType: "ticket_created",
			Name:      "Ticket Received",
			Subject:   "[{{ticket_number}}] {{title}}",
			Body: "Hello {{reporter_name}},\n\n" +
				"We have received your request **{{ticket_number}}**: {{title}}.\n\n" +
				"You can check its progress any time using the ticket number above.",
			Enabled: true,
		},
		{
			EventType: "status_changed",
			Name:      "Status Update",
			Subject:   "[{{ticket_number}}] Status changed to {{new_status}}",
			Body: "Hello {{reporter_name}},\n\n" +
				"The status of your ticket **{{ticket_number}}** changed from {{old_status}} to **{{new_status}}**.",
			Enabled: true,
		},
		{
			EventType: "ticket_resolved",
			Name:      "Ticket Resolved",
			Subject:   "[{{ticket_number}}] Your request has been resolved",
			Body: "Hello {{reporter_name}},\n\n" +
				"Your ticket **{{ticket_number}}** has been resolved.\n\n" +
				"{{comment}}",
			Enabled: true,
		},
		{
			EventType: "ticket_closed",
			Name:      "Ticket Closed",
			Subject:   "[{{ticket_number}}] Your request has been closed",
			Body: "Hello {{reporter_name}},\n\n" +
				"Your ticket **{{ticket_number}}** is now closed. Thank you for your patience.",
			Enabled: true,
		},
		{
			EventType: "comment_added",
			Name:      "New Reply",
			Subject:   "[{{ticket_number}}] New reply on your request",
			Body: "Hello {{reporter_name}},\n\n" +
				"{{author}} replied on your ticket **{{ticket_number}}**:\n\n" +
				"{{comment}}",
			Enabled: true,
		},
	}

	for _, template := range templates {
		if err := db.FirstOrCreate(&template, models.NotificationTemplateModel{
			EventType: template.EventType,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
