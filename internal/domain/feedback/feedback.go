// Package feedback holds the standalone complaint/suggestion intake queue,
// independent of the ticket lifecycle.
package feedback

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeComplaint  Type = "complaint"
	TypeSuggestion Type = "suggestion"
	TypeOther      Type = "other"
)

func (t Type) IsValid() bool {
	return t == TypeComplaint || t == TypeSuggestion || t == TypeOther
}

func (t Type) String() string { return string(t) }

type Feedback struct {
	id            uint
	feedbackType  Type
	name          string
	email         string
	subject       string
	message       string
	submittedAt   time.Time
	reviewed      bool
	reviewerNotes string
}

func NewFeedback(feedbackType Type, name, email, subject, message string) (*Feedback, error) {
	if !feedbackType.IsValid() {
		return nil, fmt.Errorf("invalid feedback type: %s", feedbackType)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}

	return &Feedback{
		feedbackType: feedbackType,
		name:         name,
		email:        email,
		subject:      subject,
		message:      message,
		submittedAt:  time.Now(),
	}, nil
}

func Reconstruct(
	id uint,
	feedbackType Type,
	name, email, subject, message string,
	submittedAt time.Time,
	reviewed bool,
	reviewerNotes string,
) (*Feedback, error) {
	if id == 0 {
		return nil, fmt.Errorf("feedback ID cannot be zero")
	}
	if !feedbackType.IsValid() {
		return nil, fmt.Errorf("invalid feedback type: %s", feedbackType)
	}

	return &Feedback{
		id:            id,
		feedbackType:  feedbackType,
		name:          name,
		email:         email,
		subject:       subject,
		message:       message,
		submittedAt:   submittedAt,
		reviewed:      reviewed,
		reviewerNotes: reviewerNotes,
	}, nil
}

func (f *Feedback) ID() uint               { return f.id }
func (f *Feedback) Type() Type             { return f.feedbackType }
func (f *Feedback) Name() string           { return f.name }
func (f *Feedback) Email() string          { return f.email }
func (f *Feedback) Subject() string        { return f.subject }
func (f *Feedback) Message() string        { return f.message }
func (f *Feedback) SubmittedAt() time.Time { return f.submittedAt }
func (f *Feedback) IsReviewed() bool       { return f.reviewed }
func (f *Feedback) ReviewerNotes() string  { return f.reviewerNotes }

func (f *Feedback) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feedback ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feedback ID cannot be zero")
	}
	f.id = id
	return nil
}

// MarkReviewed flags the entry as handled and records the reviewer's notes.
func (f *Feedback) MarkReviewed(notes string) {
	f.reviewed = true
	f.reviewerNotes = notes
}
