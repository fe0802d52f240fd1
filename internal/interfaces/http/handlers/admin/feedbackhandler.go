package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedbackapp "deskhub/internal/application/feedback"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type FeedbackHandler struct {
	service *feedbackapp.Service
	logger  logger.Interface
}

func NewFeedbackHandler(service *feedbackapp.Service, logger logger.Interface) *FeedbackHandler {
	return &FeedbackHandler{service: service, logger: logger}
}

// List handles GET /api/admin/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	unreviewedOnly := c.Query("unreviewed_only") == "true"

	result, err := h.service.List(c.Request.Context(), unreviewedOnly, p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Entries, result.Total, result.Page, result.PageSize)
}

// Get handles GET /api/admin/feedback/:id
func (h *FeedbackHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entry, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entry)
}

type reviewFeedbackRequest struct {
	Notes string `json:"notes"`
}

// Review handles POST /api/admin/feedback/:id/review
func (h *FeedbackHandler) Review(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reviewFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.Review(c.Request.Context(), feedbackapp.ReviewFeedbackCommand{
		ID:    id,
		Notes: req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback reviewed", entry)
}
