package ticket

import (
	"context"
	"time"
)

// Filter narrows ticket listings. ScopeProjectIDs is the visibility scope
// applied for non-privileged agents; nil means unscoped.
type Filter struct {
	ScopeProjectIDs []uint
	Search          string
	ProjectID       *uint
	CategoryID      *uint
	StatusID        *uint
	PriorityID      *uint
	AssigneeID      *uint
	Unassigned      bool
	ShowActive      bool
	ShowCompleted   bool
	CreatedAfter    *time.Time
	ResolvedAfter   *time.Time
	Page            int
	PageSize        int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByDisplayID performs a case-insensitive lookup.
	GetByDisplayID(ctx context.Context, displayID string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)

	SequenceSource
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	// ListByTicket returns the ticket's comments ordered by creation time.
	// When publicOnly is set, internal comments are excluded.
	ListByTicket(ctx context.Context, ticketID uint, publicOnly bool) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	// ListByTicket returns ticket-level attachments (those not linked to a
	// comment).
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
	ListByComment(ctx context.Context, commentID uint) ([]*Attachment, error)
}
