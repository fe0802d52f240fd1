package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deskhub/internal/domain/agent"
	"deskhub/internal/infrastructure/auth"
	"deskhub/internal/shared/constants"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and places the agent's identity into
// the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyAgentID, claims.AgentID)
		c.Set(constants.ContextKeyAgentRole, claims.Role)

		c.Next()
	}
}

// RequireSystemAdmin gates the admin API. It must run after RequireAuth.
func (m *AuthMiddleware) RequireSystemAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyAgentRole)
		if role != string(agent.RoleSystemAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "administrator access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AgentID returns the authenticated agent's ID from the request context.
func AgentID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyAgentID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
