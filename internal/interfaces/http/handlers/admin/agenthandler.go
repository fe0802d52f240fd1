package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	agentapp "deskhub/internal/application/agent"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type AgentHandler struct {
	service *agentapp.AdminService
	logger  logger.Interface
}

func NewAgentHandler(service *agentapp.AdminService, logger logger.Interface) *AgentHandler {
	return &AgentHandler{service: service, logger: logger}
}

type createAgentRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required"`
	ProjectIDs []uint `json:"project_ids"`
}

// Create handles POST /api/admin/agents
func (h *AgentHandler) Create(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username, email, password and role are required")
		return
	}

	agent, err := h.service.Create(c.Request.Context(), agentapp.CreateAgentCommand{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Role:       req.Role,
		ProjectIDs: req.ProjectIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, agent, "Agent created")
}

type updateAgentRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Role     string `json:"role" binding:"required"`
	Active   *bool  `json:"active"`
}

// Update handles PUT /api/admin/agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and role are required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	agent, err := h.service.Update(c.Request.Context(), agentapp.UpdateAgentCommand{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Active:   active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Agent updated", agent)
}

type assignProjectsRequest struct {
	ProjectIDs []uint `json:"project_ids"`
}

// AssignProjects handles POST /api/admin/agents/:id/projects
func (h *AgentHandler) AssignProjects(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req assignProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	agent, err := h.service.AssignProjects(c.Request.Context(), id, req.ProjectIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project assignments updated", agent)
}

type resetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword handles POST /api/admin/agents/:id/password
func (h *AgentHandler) ResetPassword(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), id, req.Password); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password reset", nil)
}

// Get handles GET /api/admin/agents/:id
func (h *AgentHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	agent, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", agent)
}

// List handles GET /api/admin/agents
func (h *AgentHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	agents, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", agents)
}
