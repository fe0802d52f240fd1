package public

import (
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

type submitFeedbackRequest struct {
	Type    string `json:"type" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /api/public/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "type, name, subject and message are required")
		return
	}

	entry, err := h.service.Submit(c.Request.Context(), feedbackapp.SubmitFeedbackCommand{
		Type:    req.Type,
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, entry, "Feedback submitted successfully")
}
