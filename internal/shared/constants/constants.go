// Package constants defines shared constant values used across layers.
package constants

// Context keys populated by the auth middleware.
const (
	ContextKeyAgentID   = "agent_id"
	ContextKeyAgentRole = "agent_role"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Table names.
const (
	TableProjects              = "projects"
	TableCategories            = "ticket_categories"
	TableStatuses              = "ticket_statuses"
	TablePriorities            = "ticket_priorities"
	TableFieldTemplates        = "field_templates"
	TableCustomFormFields      = "custom_form_fields"
	TableAgents                = "agents"
	TableAgentProjects         = "agent_projects"
	TableTickets               = "tickets"
	TableComments              = "ticket_comments"
	TableAttachments           = "ticket_attachments"
	TableFeedback              = "feedback_entries"
	TableNotificationTemplates = "notification_templates"
	TableEmailSettings         = "email_settings"
)
