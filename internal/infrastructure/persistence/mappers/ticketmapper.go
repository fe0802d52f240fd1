package mappers

import (
	"encoding/json"
	"fmt"

	"deskhub/internal/domain/ticket"
	"deskhub/internal/infrastructure/persistence/models"
)

type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	ToEntity(m *models.TicketModel) (*ticket.Ticket, error)
	ToEntities(ms []*models.TicketModel) ([]*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (tm *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	customData, err := json.Marshal(t.CustomData())
	if err != nil {
		return nil, fmt.Errorf("failed to encode custom form data: %w", err)
	}

	reporter := t.Reporter()
	return &models.TicketModel{
		ID:                 t.ID(),
		DisplayID:          t.DisplayID(),
		Title:              t.Title(),
		Description:        t.Description(),
		ReporterName:       reporter.Name,
		ReporterEmail:      reporter.Email,
		ReporterPhone:      reporter.Phone,
		ReporterBuilding:   reporter.Building,
		ReporterRoom:       reporter.Room,
		ReporterDepartment: reporter.Department,
		ReporterIP:         reporter.IPAddress,
		ProjectID:          t.ProjectID(),
		StatusID:           t.StatusID(),
		PriorityID:         t.PriorityID(),
		CategoryID:         t.CategoryID(),
		AssigneeID:         t.AssigneeID(),
		CustomFormData:     customData,
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
		ResolvedAt:         t.ResolvedAt(),
		ClosedAt:           t.ClosedAt(),
	}, nil
}

func (tm *TicketMapperImpl) ToEntity(m *models.TicketModel) (*ticket.Ticket, error) {
	customData := make(map[string]interface{})
	if len(m.CustomFormData) > 0 {
		if err := json.Unmarshal(m.CustomFormData, &customData); err != nil {
			return nil, fmt.Errorf("failed to decode custom form data for ticket %d: %w", m.ID, err)
		}
	}

	return ticket.Reconstruct(ticket.Snapshot{
		ID:          m.ID,
		DisplayID:   m.DisplayID,
		Title:       m.Title,
		Description: m.Description,
		Reporter: ticket.Reporter{
			Name:       m.ReporterName,
			Email:      m.ReporterEmail,
			Phone:      m.ReporterPhone,
			Building:   m.ReporterBuilding,
			Room:       m.ReporterRoom,
			Department: m.ReporterDepartment,
			IPAddress:  m.ReporterIP,
		},
		ProjectID:  m.ProjectID,
		StatusID:   m.StatusID,
		PriorityID: m.PriorityID,
		CategoryID: m.CategoryID,
		AssigneeID: m.AssigneeID,
		CustomData: customData,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		ResolvedAt: m.ResolvedAt,
		ClosedAt:   m.ClosedAt,
	})
}

func (tm *TicketMapperImpl) ToEntities(ms []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ms))
	for _, m := range ms {
		entity, err := tm.ToEntity(m)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type CommentMapper interface {
	ToModel(c *ticket.Comment) *models.CommentModel
	ToEntity(m *models.CommentModel) (*ticket.Comment, error)
	ToEntities(ms []*models.CommentModel) ([]*ticket.Comment, error)
}

type CommentMapperImpl struct{}

func NewCommentMapper() CommentMapper {
	return &CommentMapperImpl{}
}

func (cm *CommentMapperImpl) ToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:            c.ID(),
		TicketID:      c.TicketID(),
		AuthorAgentID: c.AuthorAgentID(),
		AuthorName:    c.AuthorName(),
		AuthorIP:      c.AuthorIP(),
		Body:          c.Body(),
		Internal:      c.IsInternal(),
		System:        c.IsSystem(),
		CreatedAt:     c.CreatedAt(),
	}
}

func (cm *CommentMapperImpl) ToEntity(m *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		m.ID, m.TicketID, m.AuthorAgentID, m.AuthorName, m.AuthorIP,
		m.Body, m.Internal, m.System, m.CreatedAt,
	)
}

func (cm *CommentMapperImpl) ToEntities(ms []*models.CommentModel) ([]*ticket.Comment, error) {
	entities := make([]*ticket.Comment, 0, len(ms))
	for _, m := range ms {
		entity, err := cm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map comment %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type AttachmentMapper interface {
	ToModel(a *ticket.Attachment) *models.AttachmentModel
	ToEntity(m *models.AttachmentModel) (*ticket.Attachment, error)
	ToEntities(ms []*models.AttachmentModel) ([]*ticket.Attachment, error)
}

type AttachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &AttachmentMapperImpl{}
}

func (am *AttachmentMapperImpl) ToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		CommentID:    a.CommentID(),
		StoredPath:   a.StoredPath(),
		FileName:     a.FileName(),
		Size:         a.Size(),
		UploaderID:   a.UploaderID(),
		UploaderName: a.UploaderName(),
		CreatedAt:    a.UploadedAt(),
	}
}

func (am *AttachmentMapperImpl) ToEntity(m *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		m.ID, m.TicketID, m.CommentID, m.StoredPath, m.FileName,
		m.Size, m.UploaderID, m.UploaderName, m.CreatedAt,
	)
}

func (am *AttachmentMapperImpl) ToEntities(ms []*models.AttachmentModel) ([]*ticket.Attachment, error) {
	entities := make([]*ticket.Attachment, 0, len(ms))
	for _, m := range ms {
		entity, err := am.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map attachment %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
