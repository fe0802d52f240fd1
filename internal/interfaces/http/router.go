package http

import (
	"github.com/gin-gonic/gin"

	"deskhub/internal/interfaces/http/middleware"
	"deskhub/internal/interfaces/http/routes"
	"deskhub/internal/shared/utils"
)

// Router owns the gin engine and registers every route group on it.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	engine := gin.New()

	engine.Use(middleware.Recovery(container.log.Named("recovery")))
	engine.Use(middleware.Logger(container.log.Named("http")))
	engine.Use(middleware.CORS([]string{"*"}))
	engine.Use(middleware.SecurityHeaders())

	return &Router{
		engine:    engine,
		container: container,
	}
}

// SetupRoutes registers the health check plus the public, auth, console, and
// admin route groups.
func (r *Router) SetupRoutes() {
	c := r.container

	r.engine.GET("/health", func(ctx *gin.Context) {
		utils.SuccessResponse(ctx, 200, "", gin.H{"status": "ok"})
	})

	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		IntakeHandler:   c.hdlrs.intake,
		FeedbackHandler: c.hdlrs.publicFeedback,
		RateLimiter:     c.rateLimiter,
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})

	routes.SetupConsoleRoutes(r.engine, &routes.ConsoleRouteConfig{
		TicketHandler:  c.hdlrs.consoleTickets,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		ProjectHandler:       c.hdlrs.projects,
		CategoryHandler:      c.hdlrs.categories,
		TaxonomyHandler:      c.hdlrs.taxonomy,
		FieldTemplateHandler: c.hdlrs.fieldTemplates,
		AgentHandler:         c.hdlrs.agents,
		NotificationHandler:  c.hdlrs.notifications,
		FeedbackHandler:      c.hdlrs.adminFeedback,
		AuthMiddleware:       c.authMiddleware,
	})
}

// Engine exposes the configured gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
