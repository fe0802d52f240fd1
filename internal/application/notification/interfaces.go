// Package notification renders lifecycle email notifications from the
// admin-managed templates and manages those templates and the SMTP settings.
package notification

import "context"

// EmailSender delivers a rendered notification. Implementations read the
// stored SMTP settings and refuse to send while email is disabled.
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// SettingsReloader is notified after the SMTP settings change so the mail
// transport can pick up the new configuration without a restart.
type SettingsReloader interface {
	Reload(ctx context.Context) error
}
