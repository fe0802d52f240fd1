// Package feedback handles the public complaint/suggestion intake and its
// admin review queue.
package feedback

import (
	"context"
	"net/mail"
	"time"

	"deskhub/internal/domain/feedback"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type SubmitFeedbackCommand struct {
	Type    string
	Name    string
	Email   string
	Subject string
	Message string
}

type ReviewFeedbackCommand struct {
	ID    uint
	Notes string
}

type FeedbackDTO struct {
	ID            uint      `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	SubmittedAt   time.Time `json:"submitted_at"`
	Reviewed      bool      `json:"reviewed"`
	ReviewerNotes string    `json:"reviewer_notes,omitempty"`
}

func toDTO(f *feedback.Feedback) *FeedbackDTO {
	return &FeedbackDTO{
		ID:            f.ID(),
		Type:          f.Type().String(),
		Name:          f.Name(),
		Email:         f.Email(),
		Subject:       f.Subject(),
		Message:       f.Message(),
		SubmittedAt:   f.SubmittedAt(),
		Reviewed:      f.IsReviewed(),
		ReviewerNotes: f.ReviewerNotes(),
	}
}

type Service struct {
	repo   feedback.Repository
	logger logger.Interface
}

func NewService(repo feedback.Repository, logger logger.Interface) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Submit(ctx context.Context, cmd SubmitFeedbackCommand) (*FeedbackDTO, error) {
	if cmd.Email != "" {
		if _, err := mail.ParseAddress(cmd.Email); err != nil {
			return nil, errors.NewValidationError("enter a valid email address")
		}
	}

	entry, err := feedback.NewFeedback(feedback.Type(cmd.Type), cmd.Name, cmd.Email, cmd.Subject, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.Errorw("failed to save feedback", "error", err)
		return nil, err
	}

	s.logger.Infow("feedback submitted", "feedback_id", entry.ID(), "type", entry.Type().String())
	return toDTO(entry), nil
}

func (s *Service) Review(ctx context.Context, cmd ReviewFeedbackCommand) (*FeedbackDTO, error) {
	entry, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("feedback entry not found")
	}

	entry.MarkReviewed(cmd.Notes)
	if err := s.repo.Update(ctx, entry); err != nil {
		s.logger.Errorw("failed to mark feedback reviewed", "feedback_id", cmd.ID, "error", err)
		return nil, err
	}
	return toDTO(entry), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*FeedbackDTO, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("feedback entry not found")
	}
	return toDTO(entry), nil
}

type ListResult struct {
	Entries  []*FeedbackDTO
	Total    int64
	Page     int
	PageSize int
}

func (s *Service) List(ctx context.Context, unreviewedOnly bool, page, pageSize int) (*ListResult, error) {
	p := utils.ValidatePagination(page, pageSize)
	entries, total, err := s.repo.List(ctx, unreviewedOnly, p.Page, p.PageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*FeedbackDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, toDTO(e))
	}
	return &ListResult{Entries: result, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
