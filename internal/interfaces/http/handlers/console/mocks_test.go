package console

import (
	"context"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/application/ticket/usecases"
)

type mockDashboardExecutor struct {
	executeFn func(ctx context.Context, query usecases.DashboardQuery) (*usecases.DashboardResult, error)
}

func (m *mockDashboardExecutor) Execute(ctx context.Context, query usecases.DashboardQuery) (*usecases.DashboardResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockListTicketsExecutor struct {
	executeFn func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return &usecases.ListTicketsResult{}, nil
}

type mockPollExecutor struct {
	executeFn func(ctx context.Context, query usecases.PollNewTicketsQuery) (*usecases.PollNewTicketsResult, error)
}

func (m *mockPollExecutor) Execute(ctx context.Context, query usecases.PollNewTicketsQuery) (*usecases.PollNewTicketsResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return &usecases.PollNewTicketsResult{}, nil
}

type mockGetTicketExecutor struct {
	executeFn func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error)
}

func (m *mockGetTicketExecutor) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

type mockAddCommentExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error)
}

func (m *mockAddCommentExecutor) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.AddCommentResult{}, nil
}

type mockSaveAttachmentExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.SaveAttachmentCommand) (*usecases.SaveAttachmentResult, error)
}

func (m *mockSaveAttachmentExecutor) Execute(ctx context.Context, cmd usecases.SaveAttachmentCommand) (*usecases.SaveAttachmentResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.SaveAttachmentResult{}, nil
}

type mockChangeStatusExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error)
}

func (m *mockChangeStatusExecutor) Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ChangeStatusResult{}, nil
}

type mockChangePriorityExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ChangePriorityCommand) (*usecases.ChangePriorityResult, error)
}

func (m *mockChangePriorityExecutor) Execute(ctx context.Context, cmd usecases.ChangePriorityCommand) (*usecases.ChangePriorityResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ChangePriorityResult{}, nil
}

type mockChangeProjectExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ChangeProjectCommand) (*usecases.ChangeProjectResult, error)
}

func (m *mockChangeProjectExecutor) Execute(ctx context.Context, cmd usecases.ChangeProjectCommand) (*usecases.ChangeProjectResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ChangeProjectResult{}, nil
}

type mockReassignExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ReassignTicketCommand) (*usecases.ReassignTicketResult, error)
}

func (m *mockReassignExecutor) Execute(ctx context.Context, cmd usecases.ReassignTicketCommand) (*usecases.ReassignTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ReassignTicketResult{}, nil
}

type mockClaimExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ClaimTicketCommand) (*usecases.ClaimTicketResult, error)
}

func (m *mockClaimExecutor) Execute(ctx context.Context, cmd usecases.ClaimTicketCommand) (*usecases.ClaimTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ClaimTicketResult{}, nil
}

type mockResolveExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error)
}

func (m *mockResolveExecutor) Execute(ctx context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.ResolveTicketResult{}, nil
}

type mockCloseExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error)
}

func (m *mockCloseExecutor) Execute(ctx context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.CloseTicketResult{}, nil
}
