package usecases

import (
	"context"
	"time"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
)

type DashboardQuery struct {
	AgentID uint
}

type DashboardResult struct {
	Open          int64 `json:"open"`
	Unassigned    int64 `json:"unassigned"`
	Mine          int64 `json:"mine"`
	ResolvedToday int64 `json:"resolved_today"`
}

// DashboardUseCase computes the console landing counts inside the caller's
// visibility scope.
type DashboardUseCase struct {
	ticketRepo ticket.Repository
	agentRepo  agent.Repository
	logger     logger.Interface
}

func NewDashboardUseCase(ticketRepo ticket.Repository, agentRepo agent.Repository, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo: ticketRepo,
		agentRepo:  agentRepo,
		logger:     logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, query DashboardQuery) (*DashboardResult, error) {
	actingAgent, err := uc.agentRepo.GetByID(ctx, query.AgentID)
	if err != nil {
		return nil, err
	}
	if actingAgent == nil || !actingAgent.IsActive() {
		return nil, errors.NewUnauthorizedError("agent account is not available")
	}

	var scope []uint
	if !actingAgent.IsPrivileged() {
		scope, err = uc.agentRepo.ActiveProjectIDs(ctx, query.AgentID)
		if err != nil {
			return nil, err
		}
		if len(scope) == 0 {
			return &DashboardResult{}, nil
		}
	}

	result := &DashboardResult{}

	if result.Open, err = uc.count(ctx, ticket.Filter{ScopeProjectIDs: scope, ShowActive: true}); err != nil {
		return nil, err
	}

	if result.Unassigned, err = uc.count(ctx, ticket.Filter{ScopeProjectIDs: scope, ShowActive: true, Unassigned: true}); err != nil {
		return nil, err
	}

	agentID := query.AgentID
	if result.Mine, err = uc.count(ctx, ticket.Filter{ScopeProjectIDs: scope, ShowActive: true, AssigneeID: &agentID}); err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if result.ResolvedToday, err = uc.count(ctx, ticket.Filter{ScopeProjectIDs: scope, ResolvedAfter: &startOfDay}); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *DashboardUseCase) count(ctx context.Context, filter ticket.Filter) (int64, error) {
	filter.Page = 1
	filter.PageSize = 1
	_, total, err := uc.ticketRepo.List(ctx, filter)
	return total, err
}
