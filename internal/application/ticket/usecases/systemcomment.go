package usecases

import (
	"context"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/logger"
)

// recordSystemComment appends an audit entry for a console action. The action
// itself has already succeeded, so a failure here is logged and swallowed
// rather than rolling the action back.
func recordSystemComment(
	ctx context.Context,
	repo ticket.CommentRepository,
	lg logger.Interface,
	t *ticket.Ticket,
	actingAgent *agent.Agent,
	body string,
	internal bool,
) *ticket.Comment {
	c, err := ticket.NewSystemComment(t.ID(), actingAgent.ID(), actingAgent.DisplayName(), body, internal)
	if err != nil {
		lg.Warnw("failed to build system comment", "ticket_id", t.ID(), "error", err)
		return nil
	}
	if err := repo.Save(ctx, c); err != nil {
		lg.Warnw("failed to record system comment", "ticket_id", t.ID(), "error", err)
		return nil
	}
	return c
}
