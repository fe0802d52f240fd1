package routes

import (
	"github.com/gin-gonic/gin"

	"deskhub/internal/interfaces/http/handlers/admin"
	"deskhub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for the administration routes.
type AdminRouteConfig struct {
	ProjectHandler       *admin.ProjectHandler
	CategoryHandler      *admin.CategoryHandler
	TaxonomyHandler      *admin.TaxonomyHandler
	FieldTemplateHandler *admin.FieldTemplateHandler
	AgentHandler         *admin.AgentHandler
	NotificationHandler  *admin.NotificationHandler
	FeedbackHandler      *admin.FeedbackHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the administration surface. Every route sits
// behind authentication plus the system admin role check.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	adm := engine.Group("/api/admin")
	adm.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireSystemAdmin())
	{
		projects := adm.Group("/projects")
		{
			projects.POST("", cfg.ProjectHandler.Create)
			projects.GET("", cfg.ProjectHandler.List)
			projects.GET("/:id", cfg.ProjectHandler.Get)
			projects.PUT("/:id", cfg.ProjectHandler.Update)
			projects.DELETE("/:id", cfg.ProjectHandler.Delete)
		}

		categories := adm.Group("/categories")
		{
			categories.POST("", cfg.CategoryHandler.Create)
			categories.GET("", cfg.CategoryHandler.List)
			categories.GET("/:id", cfg.CategoryHandler.Get)
			categories.PUT("/:id", cfg.CategoryHandler.Update)
			categories.DELETE("/:id", cfg.CategoryHandler.Delete)
			categories.GET("/:id/fields", cfg.CategoryHandler.ListFields)
			categories.POST("/:id/fields", cfg.CategoryHandler.CreateField)
			categories.POST("/:id/fields/reorder", cfg.CategoryHandler.ReorderFields)
		}

		formFields := adm.Group("/form-fields")
		{
			formFields.PUT("/:id", cfg.CategoryHandler.UpdateField)
			formFields.DELETE("/:id", cfg.CategoryHandler.DeleteField)
		}

		statuses := adm.Group("/statuses")
		{
			statuses.POST("", cfg.TaxonomyHandler.CreateStatus)
			statuses.GET("", cfg.TaxonomyHandler.ListStatuses)
			statuses.PUT("/:id", cfg.TaxonomyHandler.UpdateStatus)
			statuses.DELETE("/:id", cfg.TaxonomyHandler.DeleteStatus)
		}

		priorities := adm.Group("/priorities")
		{
			priorities.POST("", cfg.TaxonomyHandler.CreatePriority)
			priorities.GET("", cfg.TaxonomyHandler.ListPriorities)
			priorities.PUT("/:id", cfg.TaxonomyHandler.UpdatePriority)
			priorities.DELETE("/:id", cfg.TaxonomyHandler.DeletePriority)
		}

		templates := adm.Group("/field-templates")
		{
			templates.POST("", cfg.FieldTemplateHandler.Create)
			templates.GET("", cfg.FieldTemplateHandler.List)
			templates.GET("/:id", cfg.FieldTemplateHandler.Get)
			templates.PUT("/:id", cfg.FieldTemplateHandler.Update)
			templates.DELETE("/:id", cfg.FieldTemplateHandler.Delete)
		}

		agents := adm.Group("/agents")
		{
			agents.POST("", cfg.AgentHandler.Create)
			agents.GET("", cfg.AgentHandler.List)
			agents.GET("/:id", cfg.AgentHandler.Get)
			agents.PUT("/:id", cfg.AgentHandler.Update)
			agents.POST("/:id/projects", cfg.AgentHandler.AssignProjects)
			agents.POST("/:id/password", cfg.AgentHandler.ResetPassword)
		}

		notifications := adm.Group("/notification-templates")
		{
			notifications.POST("", cfg.NotificationHandler.CreateTemplate)
			notifications.GET("", cfg.NotificationHandler.ListTemplates)
			notifications.PUT("/:id", cfg.NotificationHandler.UpdateTemplate)
			notifications.DELETE("/:id", cfg.NotificationHandler.DeleteTemplate)
		}

		emailSettings := adm.Group("/email-settings")
		{
			emailSettings.GET("", cfg.NotificationHandler.GetEmailSettings)
			emailSettings.PUT("", cfg.NotificationHandler.UpdateEmailSettings)
			emailSettings.POST("/test", cfg.NotificationHandler.SendTestEmail)
		}

		feedback := adm.Group("/feedback")
		{
			feedback.GET("", cfg.FeedbackHandler.List)
			feedback.GET("/:id", cfg.FeedbackHandler.Get)
			feedback.POST("/:id/review", cfg.FeedbackHandler.Review)
		}
	}
}
