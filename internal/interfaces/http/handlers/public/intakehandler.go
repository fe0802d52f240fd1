// Package public holds the anonymous intake surface: category discovery, form
// schemas, ticket submission, status lookup and feedback.
package public

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	catalogapp "deskhub/internal/application/catalog"
	"deskhub/internal/application/forms"
	"deskhub/internal/application/ticket/usecases"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

// reservedFormKeys are the multipart keys that are not dynamic field values.
var reservedFormKeys = map[string]struct{}{
	"category_id":    {},
	"title":          {},
	"description":    {},
	"reporter_name":  {},
	"reporter_email": {},
	"reporter_phone": {},
	"building":       {},
	"room":           {},
	"department":     {},
	"attachment":     {},
}

type IntakeHandler struct {
	categoryService *catalogapp.CategoryService
	formService     *forms.Service
	createTicketUC  usecases.CreateTicketExecutor
	saveAttachUC    usecases.SaveAttachmentExecutor
	checkStatusUC   usecases.CheckStatusExecutor
	maxUploadBytes  int64
	logger          logger.Interface
}

func NewIntakeHandler(
	categoryService *catalogapp.CategoryService,
	formService *forms.Service,
	createTicketUC usecases.CreateTicketExecutor,
	saveAttachUC usecases.SaveAttachmentExecutor,
	checkStatusUC usecases.CheckStatusExecutor,
	maxUploadMB int,
	logger logger.Interface,
) *IntakeHandler {
	return &IntakeHandler{
		categoryService: categoryService,
		formService:     formService,
		createTicketUC:  createTicketUC,
		saveAttachUC:    saveAttachUC,
		checkStatusUC:   checkStatusUC,
		maxUploadBytes:  int64(maxUploadMB) << 20,
		logger:          logger,
	}
}

// ListCategories handles GET /api/public/categories
func (h *IntakeHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListPublic(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", categories)
}

// GetForm handles GET /api/public/categories/:id/form
func (h *IntakeHandler) GetForm(c *gin.Context) {
	categoryID, err := parseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	schema, err := h.formService.GetSchema(c.Request.Context(), categoryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", schema)
}

type createTicketRequest struct {
	CategoryID    uint              `json:"category_id" binding:"required"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	ReporterName  string            `json:"reporter_name"`
	ReporterEmail string            `json:"reporter_email"`
	ReporterPhone string            `json:"reporter_phone"`
	Building      string            `json:"building"`
	Room          string            `json:"room"`
	Department    string            `json:"department"`
	DynamicValues map[string]string `json:"dynamic_values"`
}

// CreateTicket handles POST /api/public/tickets. JSON bodies carry dynamic
// values under dynamic_values; multipart bodies carry them as plain form keys
// plus an optional "attachment" file part.
func (h *IntakeHandler) CreateTicket(c *gin.Context) {
	contentType := c.ContentType()

	var cmd usecases.CreateTicketCommand
	var hasFile bool

	if strings.HasPrefix(contentType, "multipart/form-data") {
		parsed, withFile, err := h.parseMultipart(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd = parsed
		hasFile = withFile
	} else {
		var req createTicketRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
		cmd = usecases.CreateTicketCommand{
			CategoryID:    req.CategoryID,
			Title:         req.Title,
			Description:   req.Description,
			ReporterName:  req.ReporterName,
			ReporterEmail: req.ReporterEmail,
			ReporterPhone: req.ReporterPhone,
			Building:      req.Building,
			Room:          req.Room,
			Department:    req.Department,
			DynamicValues: req.DynamicValues,
		}
	}

	cmd.ReporterIP = c.ClientIP()

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if hasFile {
		h.storeAttachment(c, result.TicketID, cmd.ReporterName)
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":  result.TicketID,
		"display_id": result.DisplayID,
		"created_at": result.CreatedAt,
	}, "Ticket created successfully")
}

func (h *IntakeHandler) parseMultipart(c *gin.Context) (usecases.CreateTicketCommand, bool, error) {
	if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return usecases.CreateTicketCommand{}, false, errors.NewValidationError("invalid multipart form")
	}

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		return usecases.CreateTicketCommand{}, false, errors.NewValidationError("category_id is required")
	}

	dynamic := make(map[string]string)
	for key, values := range c.Request.MultipartForm.Value {
		if _, reserved := reservedFormKeys[key]; reserved {
			continue
		}
		if len(values) > 0 {
			dynamic[key] = values[0]
		}
	}

	cmd := usecases.CreateTicketCommand{
		CategoryID:    uint(categoryID),
		Title:         c.PostForm("title"),
		Description:   c.PostForm("description"),
		ReporterName:  c.PostForm("reporter_name"),
		ReporterEmail: c.PostForm("reporter_email"),
		ReporterPhone: c.PostForm("reporter_phone"),
		Building:      c.PostForm("building"),
		Room:          c.PostForm("room"),
		Department:    c.PostForm("department"),
		DynamicValues: dynamic,
	}

	_, fileErr := c.FormFile("attachment")
	return cmd, fileErr == nil, nil
}

// storeAttachment is best effort: the ticket already exists, so a failed
// upload is logged and the submission still succeeds.
func (h *IntakeHandler) storeAttachment(c *gin.Context, ticketID uint, reporterName string) {
	header, err := c.FormFile("attachment")
	if err != nil {
		return
	}
	if header.Size > h.maxUploadBytes {
		h.logger.Warnw("attachment exceeds size limit, skipping", "ticket_id", ticketID, "size", header.Size)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Warnw("failed to open uploaded attachment", "ticket_id", ticketID, "error", err)
		return
	}
	defer file.Close()

	_, err = h.saveAttachUC.Execute(c.Request.Context(), usecases.SaveAttachmentCommand{
		TicketID:     ticketID,
		UploaderName: reporterName,
		FileName:     header.Filename,
		Content:      file,
	})
	if err != nil {
		h.logger.Warnw("failed to store intake attachment", "ticket_id", ticketID, "error", err)
	}
}

// CheckStatus handles GET /api/public/tickets/status?number=&email=
func (h *IntakeHandler) CheckStatus(c *gin.Context) {
	number := c.Query("number")
	email := c.Query("email")
	if number == "" || email == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "number and email are required")
		return
	}

	result, err := h.checkStatusUC.Execute(c.Request.Context(), usecases.CheckStatusQuery{
		DisplayID: number,
		Email:     email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id parameter")
	}
	return uint(id), nil
}
