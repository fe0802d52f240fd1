package routes

import (
	"github.com/gin-gonic/gin"

	"deskhub/internal/interfaces/http/handlers/console"
	"deskhub/internal/interfaces/http/middleware"
)

// ConsoleRouteConfig holds dependencies for the agent console routes.
type ConsoleRouteConfig struct {
	TicketHandler  *console.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupConsoleRoutes configures the authenticated agent console.
// Note: specific routes (my, poll) must be registered before the
// parameterized :id routes.
func SetupConsoleRoutes(engine *gin.Engine, cfg *ConsoleRouteConfig) {
	con := engine.Group("/api/console")
	con.Use(cfg.AuthMiddleware.RequireAuth())
	{
		con.GET("/dashboard", cfg.TicketHandler.Dashboard)

		tickets := con.Group("/tickets")
		{
			tickets.GET("", cfg.TicketHandler.ListTickets)
			tickets.GET("/my", cfg.TicketHandler.MyTickets)
			tickets.GET("/poll", cfg.TicketHandler.Poll)
			tickets.GET("/:id", cfg.TicketHandler.GetTicket)
			tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
			tickets.POST("/:id/status", cfg.TicketHandler.ChangeStatus)
			tickets.POST("/:id/priority", cfg.TicketHandler.ChangePriority)
			tickets.POST("/:id/project", cfg.TicketHandler.ChangeProject)
			tickets.POST("/:id/assignee", cfg.TicketHandler.Reassign)
			tickets.POST("/:id/claim", cfg.TicketHandler.Claim)
			tickets.POST("/:id/resolve", cfg.TicketHandler.Resolve)
			tickets.POST("/:id/close", cfg.TicketHandler.Close)
			tickets.POST("/:id/close-with-remarks", cfg.TicketHandler.CloseWithRemarks)
		}
	}
}
