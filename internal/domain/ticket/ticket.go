// Package ticket holds the ticket aggregate: the ticket itself, its comments
// and attachments, display-ID generation and the console permission policy.
package ticket

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"deskhub/internal/domain/catalog"
)

// Reporter carries the submitter's contact details captured on the intake
// form. Tickets are created by anonymous end users, so this is plain data, not
// an account reference.
type Reporter struct {
	Name       string
	Email      string
	Phone      string
	Building   string
	Room       string
	Department string
	IPAddress  string
}

func (r Reporter) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("reporter name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("reporter email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("invalid reporter email: %s", r.Email)
	}
	return nil
}

type Ticket struct {
	id          uint
	displayID   string
	title       string
	description string
	reporter    Reporter
	projectID   uint
	statusID    uint
	priorityID  *uint
	categoryID  *uint
	assigneeID  *uint
	customData  map[string]interface{}
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
	comments    []*Comment
}

func NewTicket(
	title string,
	description string,
	reporter Reporter,
	projectID uint,
	categoryID *uint,
	customData map[string]interface{},
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if err := reporter.Validate(); err != nil {
		return nil, err
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	if customData == nil {
		customData = make(map[string]interface{})
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		reporter:    reporter,
		projectID:   projectID,
		categoryID:  categoryID,
		customData:  customData,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

// Snapshot carries every persisted ticket field for reconstruction from
// storage.
type Snapshot struct {
	ID          uint
	DisplayID   string
	Title       string
	Description string
	Reporter    Reporter
	ProjectID   uint
	StatusID    uint
	PriorityID  *uint
	CategoryID  *uint
	AssigneeID  *uint
	CustomData  map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time
	ClosedAt    *time.Time
}

func Reconstruct(s Snapshot) (*Ticket, error) {
	if s.ID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if s.DisplayID == "" {
		return nil, fmt.Errorf("ticket display ID is required")
	}
	if s.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if s.ProjectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if s.StatusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}

	if s.CustomData == nil {
		s.CustomData = make(map[string]interface{})
	}

	return &Ticket{
		id:          s.ID,
		displayID:   s.DisplayID,
		title:       s.Title,
		description: s.Description,
		reporter:    s.Reporter,
		projectID:   s.ProjectID,
		statusID:    s.StatusID,
		priorityID:  s.PriorityID,
		categoryID:  s.CategoryID,
		assigneeID:  s.AssigneeID,
		customData:  s.CustomData,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		resolvedAt:  s.ResolvedAt,
		closedAt:    s.ClosedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint            { return t.id }
func (t *Ticket) DisplayID() string   { return t.displayID }
func (t *Ticket) Title() string       { return t.title }
func (t *Ticket) Description() string { return t.description }
func (t *Ticket) Reporter() Reporter  { return t.reporter }
func (t *Ticket) ProjectID() uint     { return t.projectID }
func (t *Ticket) StatusID() uint      { return t.statusID }
func (t *Ticket) PriorityID() *uint   { return t.priorityID }
func (t *Ticket) CategoryID() *uint   { return t.categoryID }
func (t *Ticket) AssigneeID() *uint   { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time  { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }
func (t *Ticket) ClosedAt() *time.Time   { return t.closedAt }

func (t *Ticket) CustomData() map[string]interface{} {
	dataCopy := make(map[string]interface{}, len(t.customData))
	for k, v := range t.customData {
		dataCopy[k] = v
	}
	return dataCopy
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

// AttachComments sets the loaded comment list. Used by repositories.
func (t *Ticket) AttachComments(comments []*Comment) {
	t.comments = comments
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetDisplayID assigns the generated display ID once, at creation.
func (t *Ticket) SetDisplayID(displayID string) error {
	if t.displayID != "" {
		return fmt.Errorf("ticket display ID is already set")
	}
	if displayID == "" {
		return fmt.Errorf("ticket display ID cannot be empty")
	}
	t.displayID = displayID
	return nil
}

// ApplyStatus moves the ticket to the given status and recomputes the derived
// resolved/closed timestamps from its flags: stamped when the flag is set and
// the timestamp is empty, cleared when the flag is gone. The timestamps are
// not authoritative history, only a reflection of the current status row.
func (t *Ticket) ApplyStatus(s *catalog.Status) error {
	if s == nil {
		return fmt.Errorf("status is required")
	}
	if s.ID() == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}

	t.statusID = s.ID()
	now := time.Now()

	if s.IsResolved() {
		if t.resolvedAt == nil {
			t.resolvedAt = &now
		}
	} else {
		t.resolvedAt = nil
	}

	if s.IsClosed() {
		if t.closedAt == nil {
			t.closedAt = &now
		}
	} else {
		t.closedAt = nil
	}

	t.updatedAt = now
	return nil
}

func (t *Ticket) SetPriority(priorityID *uint) {
	t.priorityID = priorityID
	t.updatedAt = time.Now()
}

func (t *Ticket) AssignTo(agentID uint) error {
	if agentID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &agentID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.updatedAt = time.Now()
}

// MoveToProject reroutes the ticket to another project and clears the
// assignee, who may not be a member of the target project.
func (t *Ticket) MoveToProject(projectID uint) error {
	if projectID == 0 {
		return fmt.Errorf("project ID is required")
	}
	t.projectID = projectID
	t.assigneeID = nil
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) IsAssignedTo(agentID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == agentID
}

func (t *Ticket) IsUnassigned() bool {
	return t.assigneeID == nil
}
