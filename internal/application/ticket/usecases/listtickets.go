package usecases

import (
	"context"
	"time"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/utils"
)

type ListTicketsQuery struct {
	AgentID       uint
	Search        string
	ProjectID     *uint
	CategoryID    *uint
	StatusID      *uint
	PriorityID    *uint
	AssigneeID    *uint
	Unassigned    bool
	ShowActive    bool
	ShowCompleted bool
	MineOnly      bool
	CreatedAfter  *time.Time
	Page          int
	PageSize      int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	agentRepo  agent.Repository
	refs       *RefResolver
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	agentRepo agent.Repository,
	refs *RefResolver,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		agentRepo:  agentRepo,
		refs:       refs,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, empty, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}
	if empty {
		return &ListTicketsResult{
			Tickets:  []dto.TicketListItemDTO{},
			Page:     filter.Page,
			PageSize: filter.PageSize,
		}, nil
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	table, err := uc.refs.ResolveBulk(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t, table.refsFor(t)))
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// buildFilter translates the query into a repository filter with visibility
// scoping applied. The second return is true when the scope is provably empty
// and no query should run.
func (uc *ListTicketsUseCase) buildFilter(ctx context.Context, query ListTicketsQuery) (ticket.Filter, bool, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.Filter{
		Search:        query.Search,
		ProjectID:     query.ProjectID,
		CategoryID:    query.CategoryID,
		StatusID:      query.StatusID,
		PriorityID:    query.PriorityID,
		AssigneeID:    query.AssigneeID,
		Unassigned:    query.Unassigned,
		ShowActive:    query.ShowActive,
		ShowCompleted: query.ShowCompleted,
		CreatedAfter:  query.CreatedAfter,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}

	if query.MineOnly {
		agentID := query.AgentID
		filter.AssigneeID = &agentID
	}

	actingAgent, err := uc.agentRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		return filter, false, err
	}
	// A token can outlive its account; a deleted or deactivated agent gets
	// nothing, not an unscoped listing.
	if actingAgent == nil || !actingAgent.IsActive() {
		return filter, false, errors.NewUnauthorizedError("agent account is not available")
	}

	if !actingAgent.IsPrivileged() {
		scope, err := uc.agentRepo.ActiveProjectIDs(ctx, query.AgentID)
		if err != nil {
			return filter, false, err
		}
		if len(scope) == 0 {
			return filter, true, nil
		}
		filter.ScopeProjectIDs = scope
	}

	return filter, false, nil
}
