// Package dto carries the serialized ticket shapes shared by the console and
// public APIs.
package dto

import (
	"time"

	"deskhub/internal/domain/ticket"
)

// Refs carries the display names of a ticket's catalog references, resolved by
// the use case before mapping.
type Refs struct {
	ProjectName  string
	CategoryName string
	StatusName   string
	StatusCode   string
	StatusColor  string
	PriorityName string
	AssigneeName string
}

type TicketDTO struct {
	ID            uint                   `json:"id"`
	DisplayID     string                 `json:"display_id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	ReporterName  string                 `json:"reporter_name"`
	ReporterEmail string                 `json:"reporter_email"`
	ReporterPhone string                 `json:"reporter_phone,omitempty"`
	Building      string                 `json:"building,omitempty"`
	Room          string                 `json:"room,omitempty"`
	Department    string                 `json:"department,omitempty"`
	ProjectID     uint                   `json:"project_id"`
	Project       string                 `json:"project"`
	CategoryID    *uint                  `json:"category_id"`
	Category      string                 `json:"category,omitempty"`
	StatusID      uint                   `json:"status_id"`
	Status        string                 `json:"status"`
	StatusCode    string                 `json:"status_code"`
	StatusColor   string                 `json:"status_color,omitempty"`
	PriorityID    *uint                  `json:"priority_id"`
	Priority      string                 `json:"priority,omitempty"`
	AssigneeID    *uint                  `json:"assignee_id"`
	Assignee      string                 `json:"assignee,omitempty"`
	CustomData    map[string]interface{} `json:"custom_form_data"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	ResolvedAt    *time.Time             `json:"resolved_at"`
	ClosedAt      *time.Time             `json:"closed_at"`
}

type TicketListItemDTO struct {
	ID          uint      `json:"id"`
	DisplayID   string    `json:"display_id"`
	Title       string    `json:"title"`
	Project     string    `json:"project"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status"`
	StatusColor string    `json:"status_color,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Assignee    string    `json:"assignee,omitempty"`
	AssigneeID  *uint     `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	IsInternal bool      `json:"is_internal"`
	IsSystem   bool      `json:"is_system"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint      `json:"id"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size"`
	UploaderName string    `json:"uploader_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// CustomFieldValueDTO is one labeled dynamic value shown on a ticket detail.
type CustomFieldValueDTO struct {
	Name  string      `json:"name"`
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// TicketDetailDTO is the full console detail payload: ticket, labeled custom
// values, discussion comments split from system history, attachments, and the
// caller's action eligibility.
type TicketDetailDTO struct {
	Ticket       TicketDTO             `json:"ticket"`
	CustomFields []CustomFieldValueDTO `json:"custom_fields"`
	Comments     []CommentDTO          `json:"comments"`
	History      []CommentDTO          `json:"history"`
	Attachments  []AttachmentDTO       `json:"attachments"`
	Actions      ticket.Actions        `json:"actions"`
}

func ToTicketDTO(t *ticket.Ticket, refs Refs) TicketDTO {
	reporter := t.Reporter()
	return TicketDTO{
		ID:            t.ID(),
		DisplayID:     t.DisplayID(),
		Title:         t.Title(),
		Description:   t.Description(),
		ReporterName:  reporter.Name,
		ReporterEmail: reporter.Email,
		ReporterPhone: reporter.Phone,
		Building:      reporter.Building,
		Room:          reporter.Room,
		Department:    reporter.Department,
		ProjectID:     t.ProjectID(),
		Project:       refs.ProjectName,
		CategoryID:    t.CategoryID(),
		Category:      refs.CategoryName,
		StatusID:      t.StatusID(),
		Status:        refs.StatusName,
		StatusCode:    refs.StatusCode,
		StatusColor:   refs.StatusColor,
		PriorityID:    t.PriorityID(),
		Priority:      refs.PriorityName,
		AssigneeID:    t.AssigneeID(),
		Assignee:      refs.AssigneeName,
		CustomData:    t.CustomData(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
		ResolvedAt:    t.ResolvedAt(),
		ClosedAt:      t.ClosedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket, refs Refs) TicketListItemDTO {
	return TicketListItemDTO{
		ID:          t.ID(),
		DisplayID:   t.DisplayID(),
		Title:       t.Title(),
		Project:     refs.ProjectName,
		Category:    refs.CategoryName,
		Status:      refs.StatusName,
		StatusColor: refs.StatusColor,
		Priority:    refs.PriorityName,
		Assignee:    refs.AssigneeName,
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		AuthorName: c.AuthorName(),
		Body:       c.Body(),
		IsInternal: c.IsInternal(),
		IsSystem:   c.IsSystem(),
		CreatedAt:  c.CreatedAt(),
	}
}

// SplitComments separates the discussion thread from the system history.
func SplitComments(comments []*ticket.Comment) (discussion, history []CommentDTO) {
	discussion = make([]CommentDTO, 0, len(comments))
	history = make([]CommentDTO, 0)
	for _, c := range comments {
		mapped := ToCommentDTO(c)
		if c.IsSystem() {
			history = append(history, mapped)
		} else {
			discussion = append(discussion, mapped)
		}
	}
	return discussion, history
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		Filename:     a.FileName(),
		Size:         a.Size(),
		UploaderName: a.UploaderName(),
		CreatedAt:    a.UploadedAt(),
	}
}
