package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "deskhub/internal/application/catalog"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type ProjectHandler struct {
	service *catalogapp.ProjectService
	logger  logger.Interface
}

func NewProjectHandler(service *catalogapp.ProjectService, logger logger.Interface) *ProjectHandler {
	return &ProjectHandler{service: service, logger: logger}
}

type createProjectRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
}

// Create handles POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project name is required")
		return
	}

	project, err := h.service.Create(c.Request.Context(), catalogapp.CreateProjectCommand{
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, project, "Project created")
}

type updateProjectRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	Active       *bool  `json:"active"`
}

// Update handles PUT /api/admin/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project name is required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	project, err := h.service.Update(c.Request.Context(), catalogapp.UpdateProjectCommand{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Active:       active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated", project)
}

// Delete handles DELETE /api/admin/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project deleted", nil)
}

// Get handles GET /api/admin/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", project)
}

// List handles GET /api/admin/projects
func (h *ProjectHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	projects, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", projects)
}
