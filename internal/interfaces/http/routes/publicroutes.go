// Package routes wires handlers into the gin engine.
package routes

import (
	"github.com/gin-gonic/gin"

	"deskhub/internal/interfaces/http/handlers/public"
	"deskhub/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the anonymous intake routes.
type PublicRouteConfig struct {
	IntakeHandler   *public.IntakeHandler
	FeedbackHandler *public.FeedbackHandler
	RateLimiter     *middleware.RateLimiter
}

// SetupPublicRoutes configures the unauthenticated intake surface. Every
// route here is rate limited by client IP.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	pub := engine.Group("/api/public")
	pub.Use(cfg.RateLimiter.Limit())
	{
		pub.GET("/categories", cfg.IntakeHandler.ListCategories)
		pub.GET("/categories/:id/form", cfg.IntakeHandler.GetForm)
		pub.POST("/tickets", cfg.IntakeHandler.CreateTicket)
		pub.GET("/tickets/status", cfg.IntakeHandler.CheckStatus)
		pub.POST("/feedback", cfg.FeedbackHandler.Submit)
	}
}
