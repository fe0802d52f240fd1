package usecases

import (
	"context"

	"deskhub/internal/application/ticket/dto"
	"deskhub/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CheckStatusExecutor interface {
	Execute(ctx context.Context, query CheckStatusQuery) (*CheckStatusResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type PollNewTicketsExecutor interface {
	Execute(ctx context.Context, query PollNewTicketsQuery) (*PollNewTicketsResult, error)
}

type DashboardExecutor interface {
	Execute(ctx context.Context, query DashboardQuery) (*DashboardResult, error)
}

type SaveAttachmentExecutor interface {
	Execute(ctx context.Context, cmd SaveAttachmentCommand) (*SaveAttachmentResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ChangePriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error)
}

type ChangeProjectExecutor interface {
	Execute(ctx context.Context, cmd ChangeProjectCommand) (*ChangeProjectResult, error)
}

type ReassignTicketExecutor interface {
	Execute(ctx context.Context, cmd ReassignTicketCommand) (*ReassignTicketResult, error)
}

type ClaimTicketExecutor interface {
	Execute(ctx context.Context, cmd ClaimTicketCommand) (*ClaimTicketResult, error)
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*ResolveTicketResult, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

// Notifier sends reporter-facing emails for ticket lifecycle events. All
// sends are best effort; failures are logged, never returned to the caller.
type Notifier interface {
	TicketCreated(ctx context.Context, t *ticket.Ticket)
	StatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus, newStatus string)
	TicketResolved(ctx context.Context, t *ticket.Ticket, comment string)
	TicketClosed(ctx context.Context, t *ticket.Ticket)
	CommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment)
}
