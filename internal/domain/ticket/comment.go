package ticket

import (
	"fmt"
	"time"
)

// Comment is a message on a ticket. Internal comments are hidden from the
// reporter. System comments are the automatic change-history entries appended
// by console actions; the explicit flag replaces any guessing from the body
// text.
type Comment struct {
	id            uint
	ticketID      uint
	authorAgentID *uint
	authorName    string
	authorIP      string
	body          string
	internal      bool
	system        bool
	createdAt     time.Time
}

// NewAgentComment creates a comment authored by a staff member.
func NewAgentComment(ticketID, agentID uint, authorName, body string, internal bool) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if agentID == 0 {
		return nil, fmt.Errorf("agent ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("comment body cannot be empty")
	}
	if len(body) > 10000 {
		return nil, fmt.Errorf("comment body exceeds maximum length of 10000 characters")
	}

	return &Comment{
		ticketID:      ticketID,
		authorAgentID: &agentID,
		authorName:    authorName,
		body:          body,
		internal:      internal,
		createdAt:     time.Now(),
	}, nil
}

// NewSystemComment creates an automatic audit entry describing a state
// transition. The acting agent is recorded as author. Internal controls
// whether the reporter can see the entry; resolution notices are public.
func NewSystemComment(ticketID, agentID uint, authorName, body string, internal bool) (*Comment, error) {
	c, err := NewAgentComment(ticketID, agentID, authorName, body, internal)
	if err != nil {
		return nil, err
	}
	c.system = true
	return c, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorAgentID *uint,
	authorName, authorIP, body string,
	internal, system bool,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:            id,
		ticketID:      ticketID,
		authorAgentID: authorAgentID,
		authorName:    authorName,
		authorIP:      authorIP,
		body:          body,
		internal:      internal,
		system:        system,
		createdAt:     createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorAgentID() *uint { return c.authorAgentID }
func (c *Comment) AuthorName() string   { return c.authorName }
func (c *Comment) AuthorIP() string     { return c.authorIP }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) IsInternal() bool     { return c.internal }
func (c *Comment) IsSystem() bool       { return c.system }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) SetAuthorIP(ip string) {
	c.authorIP = ip
}
