// Package handlers holds the HTTP handlers that do not belong to a dedicated
// API surface. The public intake, agent console and admin surfaces live in
// their own subpackages.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskhub/internal/application/agent/usecases"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type AuthHandler struct {
	loginUC   usecases.LoginExecutor
	refreshUC usecases.RefreshTokenExecutor
	logger    logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	refreshUC usecases.RefreshTokenExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		refreshUC: refreshUC,
		logger:    logger,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AgentID      uint   `json:"agent_id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:  req.Username,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", loginResponse{
		AgentID:      result.AgentID,
		Username:     result.Username,
		DisplayName:  result.DisplayName,
		Role:         result.Role,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	result, err := h.refreshUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"expires_in":    result.ExpiresIn,
	})
}

// Logout handles POST /api/auth/logout. Sessions are stateless JWT pairs, so
// logout is the client discarding its tokens; the endpoint exists so the
// console has a uniform call to make.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}
