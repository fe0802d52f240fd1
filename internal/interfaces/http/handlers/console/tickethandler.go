// Package console holds the authenticated agent console handlers.
package console

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"deskhub/internal/application/ticket/usecases"
	"deskhub/internal/interfaces/http/middleware"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type TicketHandler struct {
	dashboardUC      usecases.DashboardExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	pollUC           usecases.PollNewTicketsExecutor
	getTicketUC      usecases.GetTicketExecutor
	addCommentUC     usecases.AddCommentExecutor
	saveAttachUC     usecases.SaveAttachmentExecutor
	changeStatusUC   usecases.ChangeStatusExecutor
	changePriorityUC usecases.ChangePriorityExecutor
	changeProjectUC  usecases.ChangeProjectExecutor
	reassignUC       usecases.ReassignTicketExecutor
	claimUC          usecases.ClaimTicketExecutor
	resolveUC        usecases.ResolveTicketExecutor
	closeUC          usecases.CloseTicketExecutor
	maxUploadBytes   int64
	logger           logger.Interface
}

func NewTicketHandler(
	dashboardUC usecases.DashboardExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	pollUC usecases.PollNewTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	saveAttachUC usecases.SaveAttachmentExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	changePriorityUC usecases.ChangePriorityExecutor,
	changeProjectUC usecases.ChangeProjectExecutor,
	reassignUC usecases.ReassignTicketExecutor,
	claimUC usecases.ClaimTicketExecutor,
	resolveUC usecases.ResolveTicketExecutor,
	closeUC usecases.CloseTicketExecutor,
	maxUploadMB int,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		dashboardUC:      dashboardUC,
		listTicketsUC:    listTicketsUC,
		pollUC:           pollUC,
		getTicketUC:      getTicketUC,
		addCommentUC:     addCommentUC,
		saveAttachUC:     saveAttachUC,
		changeStatusUC:   changeStatusUC,
		changePriorityUC: changePriorityUC,
		changeProjectUC:  changeProjectUC,
		reassignUC:       reassignUC,
		claimUC:          claimUC,
		resolveUC:        resolveUC,
		closeUC:          closeUC,
		maxUploadBytes:   int64(maxUploadMB) << 20,
		logger:           logger,
	}
}

// Dashboard handles GET /api/console/dashboard
func (h *TicketHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.DashboardQuery{
		AgentID: middleware.AgentID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /api/console/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := h.parseListQuery(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// MyTickets handles GET /api/console/tickets/my
func (h *TicketHandler) MyTickets(c *gin.Context) {
	query := h.parseListQuery(c)
	query.MineOnly = true

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// Poll handles GET /api/console/tickets/poll?since=RFC3339
func (h *TicketHandler) Poll(c *gin.Context) {
	since, err := time.Parse(time.RFC3339, c.Query("since"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "since must be an RFC3339 timestamp")
		return
	}

	result, err := h.pollUC.Execute(c.Request.Context(), usecases.PollNewTicketsQuery{
		AgentID: middleware.AgentID(c),
		Since:   since,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /api/console/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		AgentID:  middleware.AgentID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

type addCommentRequest struct {
	Body     string `json:"body" binding:"required"`
	Internal bool   `json:"internal"`
}

// AddComment handles POST /api/console/tickets/:id/comments. Multipart bodies
// may carry an "attachment" file part alongside the body and internal fields.
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var body string
	var internal, hasFile bool

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.Request.ParseMultipartForm(h.maxUploadBytes); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
			return
		}
		body = c.PostForm("body")
		internal = parseFormBool(c.PostForm("internal"))
		_, fileErr := c.FormFile("attachment")
		hasFile = fileErr == nil
		if body == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "comment body is required")
			return
		}
	} else {
		var req addCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "comment body is required")
			return
		}
		body = req.Body
		internal = req.Internal
	}

	agentID := middleware.AgentID(c)
	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		AgentID:  agentID,
		Body:     body,
		Internal: internal,
		AuthorIP: c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if hasFile {
		h.storeCommentAttachment(c, ticketID, result.CommentID, agentID)
	}

	utils.CreatedResponse(c, result, "Comment added")
}

func (h *TicketHandler) storeCommentAttachment(c *gin.Context, ticketID, commentID, agentID uint) {
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
		TicketID:   ticketID,
		CommentID:  &commentID,
		UploaderID: &agentID,
		FileName:   header.Filename,
		Content:    file,
	})
	if err != nil {
		h.logger.Warnw("failed to store comment attachment", "ticket_id", ticketID, "error", err)
	}
}

type changeStatusRequest struct {
	StatusID uint   `json:"status_id" binding:"required"`
	Comment  string `json:"comment"`
}

// ChangeStatus handles POST /api/console/tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "status_id is required")
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID: ticketID,
		AgentID:  middleware.AgentID(c),
		StatusID: req.StatusID,
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

type changePriorityRequest struct {
	PriorityID uint `json:"priority_id"`
}

// ChangePriority handles POST /api/console/tickets/:id/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), usecases.ChangePriorityCommand{
		TicketID:   ticketID,
		AgentID:    middleware.AgentID(c),
		PriorityID: req.PriorityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Priority updated", result)
}

type changeProjectRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
}

// ChangeProject handles POST /api/console/tickets/:id/project
func (h *TicketHandler) ChangeProject(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req changeProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "project_id is required")
		return
	}

	result, err := h.changeProjectUC.Execute(c.Request.Context(), usecases.ChangeProjectCommand{
		TicketID:  ticketID,
		AgentID:   middleware.AgentID(c),
		ProjectID: req.ProjectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated", result)
}

type reassignRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

// Reassign handles POST /api/console/tickets/:id/assignee
func (h *TicketHandler) Reassign(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.reassignUC.Execute(c.Request.Context(), usecases.ReassignTicketCommand{
		TicketID:   ticketID,
		AgentID:    middleware.AgentID(c),
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignee updated", result)
}

// Claim handles POST /api/console/tickets/:id/claim
func (h *TicketHandler) Claim(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.claimUC.Execute(c.Request.Context(), usecases.ClaimTicketCommand{
		TicketID: ticketID,
		AgentID:  middleware.AgentID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket claimed", result)
}

type resolveRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Resolve handles POST /api/console/tickets/:id/resolve
func (h *TicketHandler) Resolve(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "a resolution comment is required")
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		TicketID: ticketID,
		AgentID:  middleware.AgentID(c),
		Comment:  req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved", result)
}

type closeRequest struct {
	Comment string `json:"comment"`
}

// Close handles POST /api/console/tickets/:id/close
func (h *TicketHandler) Close(c *gin.Context) {
	h.close(c, false)
}

// CloseWithRemarks handles POST /api/console/tickets/:id/close-with-remarks
func (h *TicketHandler) CloseWithRemarks(c *gin.Context) {
	h.close(c, true)
}

func (h *TicketHandler) close(c *gin.Context, withRemarks bool) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req closeRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.closeUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		TicketID:    ticketID,
		AgentID:     middleware.AgentID(c),
		WithRemarks: withRemarks,
		Comment:     req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

func (h *TicketHandler) parseListQuery(c *gin.Context) usecases.ListTicketsQuery {
	p := utils.ParsePagination(c)

	query := usecases.ListTicketsQuery{
		AgentID:       middleware.AgentID(c),
		Search:        c.Query("search"),
		ProjectID:     queryUint(c, "project_id"),
		CategoryID:    queryUint(c, "category_id"),
		StatusID:      queryUint(c, "status_id"),
		PriorityID:    queryUint(c, "priority_id"),
		AssigneeID:    queryUint(c, "assignee_id"),
		Unassigned:    c.Query("unassigned") == "true",
		ShowActive:    c.DefaultQuery("active", "true") == "true",
		ShowCompleted: c.Query("completed") == "true",
		Page:          p.Page,
		PageSize:      p.PageSize,
	}

	return query
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}

func queryUint(c *gin.Context, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

func parseFormBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
