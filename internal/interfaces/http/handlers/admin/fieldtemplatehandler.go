package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "deskhub/internal/application/catalog"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type FieldTemplateHandler struct {
	service *catalogapp.FieldTemplateService
	logger  logger.Interface
}

func NewFieldTemplateHandler(service *catalogapp.FieldTemplateService, logger logger.Interface) *FieldTemplateHandler {
	return &FieldTemplateHandler{service: service, logger: logger}
}

type createFieldTemplateRequest struct {
	Name         string `json:"name" binding:"required"`
	LabelDefault string `json:"label_default" binding:"required"`
	FieldType    string `json:"field_type" binding:"required"`
	HelpDefault  string `json:"help_default"`
	ChoicesJSON  string `json:"choices_json"`
}

// Create handles POST /api/admin/field-templates
func (h *FieldTemplateHandler) Create(c *gin.Context) {
	var req createFieldTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, label_default and field_type are required")
		return
	}

	template, err := h.service.Create(c.Request.Context(), catalogapp.CreateFieldTemplateCommand{
		Name:         req.Name,
		LabelDefault: req.LabelDefault,
		FieldType:    req.FieldType,
		HelpDefault:  req.HelpDefault,
		ChoicesJSON:  req.ChoicesJSON,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, template, "Field template created")
}

type updateFieldTemplateRequest struct {
	LabelDefault string `json:"label_default" binding:"required"`
	HelpDefault  string `json:"help_default"`
	ChoicesJSON  string `json:"choices_json"`
	Active       *bool  `json:"active"`
}

// Update handles PUT /api/admin/field-templates/:id
func (h *FieldTemplateHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateFieldTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "label_default is required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	template, err := h.service.Update(c.Request.Context(), catalogapp.UpdateFieldTemplateCommand{
		ID:           id,
		LabelDefault: req.LabelDefault,
		HelpDefault:  req.HelpDefault,
		ChoicesJSON:  req.ChoicesJSON,
		Active:       active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Field template updated", template)
}

// Delete handles DELETE /api/admin/field-templates/:id
func (h *FieldTemplateHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Field template deleted", nil)
}

// Get handles GET /api/admin/field-templates/:id
func (h *FieldTemplateHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	template, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", template)
}

// List handles GET /api/admin/field-templates
func (h *FieldTemplateHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	templates, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", templates)
}
