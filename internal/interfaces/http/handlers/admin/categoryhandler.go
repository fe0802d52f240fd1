package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "deskhub/internal/application/catalog"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

// CategoryHandler covers categories and the form field bindings that hang
// off them.
type CategoryHandler struct {
	categories *catalogapp.CategoryService
	formFields *catalogapp.FormFieldService
	logger     logger.Interface
}

func NewCategoryHandler(
	categories *catalogapp.CategoryService,
	formFields *catalogapp.FormFieldService,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{categories: categories, formFields: formFields, logger: logger}
}

type createCategoryRequest struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /api/admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id and name are required")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), catalogapp.CreateCategoryCommand{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, category, "Category created")
}

type updateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

// Update handles PUT /api/admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "category name is required")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	category, err := h.categories.Update(c.Request.Context(), catalogapp.UpdateCategoryCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated", category)
}

// Delete handles DELETE /api/admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted", nil)
}

// Get handles GET /api/admin/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", category)
}

// List handles GET /api/admin/categories with an optional project_id filter.
func (h *CategoryHandler) List(c *gin.Context) {
	var (
		categories interface{}
		err        error
	)
	if raw := c.Query("project_id"); raw != "" {
		projectID, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil || projectID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid project_id")
			return
		}
		categories, err = h.categories.ListByProject(c.Request.Context(), uint(projectID))
	} else {
		categories, err = h.categories.List(c.Request.Context())
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", categories)
}

// ListFields handles GET /api/admin/categories/:id/fields
func (h *CategoryHandler) ListFields(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fields, err := h.formFields.ListByCategory(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", fields)
}

type createFormFieldRequest struct {
	TemplateID    uint   `json:"template_id" binding:"required"`
	LabelOverride string `json:"label_override"`
	HelpOverride  string `json:"help_override"`
	Required      bool   `json:"required"`
	DisplayOrder  int    `json:"display_order"`
}

// CreateField handles POST /api/admin/categories/:id/fields
func (h *CategoryHandler) CreateField(c *gin.Context) {
	categoryID, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req createFormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "template_id is required")
		return
	}

	field, err := h.formFields.Create(c.Request.Context(), catalogapp.CreateFormFieldCommand{
		CategoryID:    categoryID,
		TemplateID:    req.TemplateID,
		LabelOverride: req.LabelOverride,
		HelpOverride:  req.HelpOverride,
		Required:      req.Required,
		DisplayOrder:  req.DisplayOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, field, "Form field created")
}

type updateFormFieldRequest struct {
	LabelOverride string `json:"label_override"`
	HelpOverride  string `json:"help_override"`
	Required      bool   `json:"required"`
	DisplayOrder  int    `json:"display_order"`
	Active        *bool  `json:"active"`
}

// UpdateField handles PUT /api/admin/form-fields/:id
func (h *CategoryHandler) UpdateField(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateFormFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	field, err := h.formFields.Update(c.Request.Context(), catalogapp.UpdateFormFieldCommand{
		ID:            id,
		LabelOverride: req.LabelOverride,
		HelpOverride:  req.HelpOverride,
		Required:      req.Required,
		DisplayOrder:  req.DisplayOrder,
		Active:        active,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form field updated", field)
}

// DeleteField handles DELETE /api/admin/form-fields/:id
func (h *CategoryHandler) DeleteField(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.formFields.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form field deleted", nil)
}

type reorderFieldsRequest struct {
	OrderedIDs []uint `json:"ordered_ids" binding:"required"`
}

// ReorderFields handles POST /api/admin/categories/:id/fields/reorder
func (h *CategoryHandler) ReorderFields(c *gin.Context) {
	categoryID, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reorderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "ordered_ids is required")
		return
	}

	fields, err := h.formFields.Reorder(c.Request.Context(), categoryID, req.OrderedIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Form fields reordered", fields)
}
