package usecases

import (
	"context"
	"time"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/shared/errors"
)

type PollNewTicketsQuery struct {
	AgentID uint
	Since   time.Time
}

type PollNewTicketsResult struct {
	Tickets []dto.TicketListItemDTO `json:"tickets"`
	Now     time.Time               `json:"now"`
}

// PollNewTicketsUseCase backs the console's polling endpoint: scoped tickets
// created after the caller's last check.
type PollNewTicketsUseCase struct {
	list *ListTicketsUseCase
}

func NewPollNewTicketsUseCase(list *ListTicketsUseCase) *PollNewTicketsUseCase {
	return &PollNewTicketsUseCase{list: list}
}

func (uc *PollNewTicketsUseCase) Execute(ctx context.Context, query PollNewTicketsQuery) (*PollNewTicketsResult, error) {
	if query.Since.IsZero() {
		return nil, errors.NewValidationError("since timestamp is required")
	}

	since := query.Since
	result, err := uc.list.Execute(ctx, ListTicketsQuery{
		AgentID:      query.AgentID,
		CreatedAfter: &since,
		PageSize:     100,
	})
	if err != nil {
		return nil, err
	}

	return &PollNewTicketsResult{
		Tickets: result.Tickets,
		Now:     time.Now().UTC(),
	}, nil
}
