package mappers

import (
	"fmt"

	"deskhub/internal/domain/feedback"
	"deskhub/internal/infrastructure/persistence/models"
)

type FeedbackMapper interface {
	ToModel(f *feedback.Feedback) *models.FeedbackModel
	ToEntity(m *models.FeedbackModel) (*feedback.Feedback, error)
	ToEntities(ms []*models.FeedbackModel) ([]*feedback.Feedback, error)
}

type FeedbackMapperImpl struct{}

func NewFeedbackMapper() FeedbackMapper {
	return &FeedbackMapperImpl{}
}

func (fm *FeedbackMapperImpl) ToModel(f *feedback.Feedback) *models.FeedbackModel {
	return &models.FeedbackModel{
		ID:            f.ID(),
		Type:          string(f.Type()),
		Name:          f.Name(),
		Email:         f.Email(),
		Subject:       f.Subject(),
		Message:       f.Message(),
		SubmittedAt:   f.SubmittedAt(),
		Reviewed:      f.IsReviewed(),
		ReviewerNotes: f.ReviewerNotes(),
	}
}

func (fm *FeedbackMapperImpl) ToEntity(m *models.FeedbackModel) (*feedback.Feedback, error) {
	return feedback.Reconstruct(
		m.ID, feedback.Type(m.Type), m.Name, m.Email, m.Subject, m.Message,
		m.SubmittedAt, m.Reviewed, m.ReviewerNotes,
	)
}

func (fm *FeedbackMapperImpl) ToEntities(ms []*models.FeedbackModel) ([]*feedback.Feedback, error) {
	entities := make([]*feedback.Feedback, 0, len(ms))
	for _, m := range ms {
		entity, err := fm.ToEntity(m)
		if err != nil {
			return nil, fmt.Errorf("failed to map feedback entry %d: %w", m.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
