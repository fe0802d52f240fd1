package notification

import (
	"context"

	"deskhub/internal/domain/notification"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/errors"
	"deskhub/internal/shared/logger"
	"deskhub/internal/shared/services/markdown"
)

// Notifier sends reporter-facing lifecycle emails. Every send is best effort:
// a missing or disabled template, a disabled mail transport or a delivery
// failure is logged and otherwise ignored.
type Notifier struct {
	templateRepo notification.TemplateRepository
	sender       EmailSender
	markdown     markdown.MarkdownService
	logger       logger.Interface
}

func NewNotifier(
	templateRepo notification.TemplateRepository,
	sender EmailSender,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		templateRepo: templateRepo,
		sender:       sender,
		markdown:     markdown,
		logger:       logger,
	}
}

func (n *Notifier) TicketCreated(ctx context.Context, t *ticket.Ticket) {
	n.notify(ctx, notification.EventTicketCreated, t, n.baseVars(t))
}

func (n *Notifier) StatusChanged(ctx context.Context, t *ticket.Ticket, oldStatus, newStatus string) {
	vars := n.baseVars(t)
	vars["old_status"] = oldStatus
	vars["new_status"] = newStatus
	n.notify(ctx, notification.EventStatusChanged, t, vars)
}

func (n *Notifier) TicketResolved(ctx context.Context, t *ticket.Ticket, comment string) {
	vars := n.baseVars(t)
	vars["comment"] = comment
	n.notify(ctx, notification.EventTicketResolved, t, vars)
}

func (n *Notifier) TicketClosed(ctx context.Context, t *ticket.Ticket) {
	n.notify(ctx, notification.EventTicketClosed, t, n.baseVars(t))
}

func (n *Notifier) CommentAdded(ctx context.Context, t *ticket.Ticket, c *ticket.Comment) {
	vars := n.baseVars(t)
	vars["comment"] = c.Body()
	vars["author"] = c.AuthorName()
	n.notify(ctx, notification.EventCommentAdded, t, vars)
}

func (n *Notifier) baseVars(t *ticket.Ticket) map[string]string {
	return map[string]string{
		"ticket_number": t.DisplayID(),
		"title":         t.Title(),
		"reporter_name": t.Reporter().Name,
	}
}

func (n *Notifier) notify(ctx context.Context, event notification.EventType, t *ticket.Ticket, vars map[string]string) {
	recipient := t.Reporter().Email
	if recipient == "" {
		return
	}

	tpl, err := n.templateRepo.GetByEventType(ctx, event)
	if err != nil {
		if errors.IsNotFound(err) {
			n.logger.Debugw("no notification template configured", "event", event.String())
			return
		}
		n.logger.Warnw("failed to load notification template", "event", event.String(), "error", err)
		return
	}
	if tpl == nil || !tpl.IsEnabled() {
		return
	}

	subject, body := tpl.Render(vars)
	htmlBody, err := n.markdown.ToHTMLSanitized(body)
	if err != nil {
		n.logger.Warnw("failed to render notification body", "event", event.String(), "ticket", t.DisplayID(), "error", err)
		return
	}

	if err := n.sender.Send(ctx, []string{recipient}, subject, htmlBody); err != nil {
		n.logger.Warnw("failed to send notification email", "event", event.String(), "ticket", t.DisplayID(), "error", err)
		return
	}
	n.logger.Debugw("notification sent", "event", event.String(), "ticket", t.DisplayID())
}
