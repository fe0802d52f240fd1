package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	notificationapp "deskhub/internal/application/notification"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type NotificationHandler struct {
	service *notificationapp.AdminService
	logger  logger.Interface
}

func NewNotificationHandler(service *notificationapp.AdminService, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

type createTemplateRequest struct {
	EventType string `json:"event_type" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Body      string `json:"body" binding:"required"`
}

// CreateTemplate handles POST /api/admin/notification-templates
func (h *NotificationHandler) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "event_type, name, subject and body are required")
		return
	}

	template, err := h.service.CreateTemplate(c.Request.Context(), notificationapp.CreateTemplateCommand{
		EventType: req.EventType,
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, template, "Notification template created")
}

type updateTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
	Enabled *bool  `json:"enabled"`
}

// UpdateTemplate handles PUT /api/admin/notification-templates/:id
func (h *NotificationHandler) UpdateTemplate(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, subject and body are required")
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	template, err := h.service.UpdateTemplate(c.Request.Context(), notificationapp.UpdateTemplateCommand{
		ID:      id,
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
		Enabled: enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification template updated", template)
}

// DeleteTemplate handles DELETE /api/admin/notification-templates/:id
func (h *NotificationHandler) DeleteTemplate(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteTemplate(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification template deleted", nil)
}

// ListTemplates handles GET /api/admin/notification-templates
func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	templates, err := h.service.ListTemplates(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", templates)
}

// GetEmailSettings handles GET /api/admin/email-settings
func (h *NotificationHandler) GetEmailSettings(c *gin.Context) {
	settings, err := h.service.GetEmailSettings(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", settings)
}

type updateEmailSettingsRequest struct {
	Host        string `json:"host" binding:"required"`
	Port        int    `json:"port" binding:"required"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"from_address" binding:"required,email"`
	FromName    string `json:"from_name"`
	Enabled     bool   `json:"enabled"`
}

// UpdateEmailSettings handles PUT /api/admin/email-settings
func (h *NotificationHandler) UpdateEmailSettings(c *gin.Context) {
	var req updateEmailSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "host, port and from_address are required")
		return
	}

	settings, err := h.service.UpdateEmailSettings(c.Request.Context(), notificationapp.UpdateEmailSettingsCommand{
		Host:        req.Host,
		Port:        req.Port,
		Username:    req.Username,
		Password:    req.Password,
		FromAddress: req.FromAddress,
		FromName:    req.FromName,
		Enabled:     req.Enabled,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email settings updated", settings)
}

type testEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// SendTestEmail handles POST /api/admin/email-settings/test
func (h *NotificationHandler) SendTestEmail(c *gin.Context) {
	var req testEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a valid recipient address is required")
		return
	}

	if err := h.service.SendTestEmail(c.Request.Context(), req.To); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Test email sent", nil)
}
