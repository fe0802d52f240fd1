package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "deskhub/internal/application/catalog"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

// TaxonomyHandler covers the global status and priority registries.
type TaxonomyHandler struct {
	statuses   *catalogapp.StatusService
	priorities *catalogapp.PriorityService
	logger     logger.Interface
}

func NewTaxonomyHandler(
	statuses *catalogapp.StatusService,
	priorities *catalogapp.PriorityService,
	logger logger.Interface,
) *TaxonomyHandler {
	return &TaxonomyHandler{statuses: statuses, priorities: priorities, logger: logger}
}

type createStatusRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
	Resolved  bool   `json:"resolved"`
	Closed    bool   `json:"closed"`
	SortOrder int    `json:"sort_order"`
}

// CreateStatus handles POST /api/admin/statuses
func (h *TaxonomyHandler) CreateStatus(c *gin.Context) {
	var req createStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and code are required")
		return
	}

	status, err := h.statuses.Create(c.Request.Context(), catalogapp.CreateStatusCommand{
		Name:      req.Name,
		Code:      req.Code,
		Color:     req.Color,
		IsDefault: req.IsDefault,
		Resolved:  req.Resolved,
		Closed:    req.Closed,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, status, "Status created")
}

type updateStatusRequest struct {
	Name      string `json:"name" binding:"required"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
	Resolved  bool   `json:"resolved"`
	Closed    bool   `json:"closed"`
	SortOrder int    `json:"sort_order"`
}

// UpdateStatus handles PUT /api/admin/statuses/:id
func (h *TaxonomyHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status name is required")
		return
	}

	status, err := h.statuses.Update(c.Request.Context(), catalogapp.UpdateStatusCommand{
		ID:        id,
		Name:      req.Name,
		Color:     req.Color,
		IsDefault: req.IsDefault,
		Resolved:  req.Resolved,
		Closed:    req.Closed,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", status)
}

// DeleteStatus handles DELETE /api/admin/statuses/:id
func (h *TaxonomyHandler) DeleteStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.statuses.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status deleted", nil)
}

// ListStatuses handles GET /api/admin/statuses
func (h *TaxonomyHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statuses.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", statuses)
}

type createPriorityRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

// CreatePriority handles POST /api/admin/priorities
func (h *TaxonomyHandler) CreatePriority(c *gin.Context) {
	var req createPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name and code are required")
		return
	}

	priority, err := h.priorities.Create(c.Request.Context(), catalogapp.CreatePriorityCommand{
		Name:      req.Name,
		Code:      req.Code,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, priority, "Priority created")
}

type updatePriorityRequest struct {
	Name      string `json:"name" binding:"required"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

// UpdatePriority handles PUT /api/admin/priorities/:id
func (h *TaxonomyHandler) UpdatePriority(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "priority name is required")
		return
	}

	priority, err := h.priorities.Update(c.Request.Context(), catalogapp.UpdatePriorityCommand{
		ID:        id,
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated", priority)
}

// DeletePriority handles DELETE /api/admin/priorities/:id
func (h *TaxonomyHandler) DeletePriority(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.priorities.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority deleted", nil)
}

// ListPriorities handles GET /api/admin/priorities
func (h *TaxonomyHandler) ListPriorities(c *gin.Context) {
	priorities, err := h.priorities.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", priorities)
}
