package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/notification"
	apperrors "deskhub/internal/shared/errors"
)

func TestNotificationTemplateRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewNotificationTemplateRepository(gdb)
	ctx := context.Background()

	template, err := notification.NewTemplate(notification.EventTicketCreated,
		"Ticket Received", "[{{ticket_number}}] {{title}}", "Hello {{reporter_name}}.")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, template))

	t.Run("get by event type", func(t *testing.T) {
		found, err := repo.GetByEventType(ctx, notification.EventTicketCreated)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, template.ID(), found.ID())
	})

	t.Run("missing event yields typed not found", func(t *testing.T) {
		found, err := repo.GetByEventType(ctx, notification.EventTicketClosed)
		require.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("duplicate event type is rejected by the unique index", func(t *testing.T) {
		dup, err := notification.NewTemplate(notification.EventTicketCreated, "Second", "s", "b")
		require.NoError(t, err)
		assert.Error(t, repo.Save(ctx, dup))
	})

	t.Run("update persists changes", func(t *testing.T) {
		require.NoError(t, template.Update(template.Name(), template.Subject(), template.Body(), false))
		require.NoError(t, repo.Update(ctx, template))

		found, err := repo.GetByID(ctx, template.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.IsEnabled())
	})
}

func TestEmailSettingsRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewEmailSettingsRepository(gdb)
	ctx := context.Background()

	t.Run("get before configuration yields typed not found", func(t *testing.T) {
		settings, err := repo.Get(ctx)
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("upsert creates then replaces the single row", func(t *testing.T) {
		first, err := notification.NewEmailSettings("smtp.example.edu", 587, "mailer", "secret", "help@example.edu", "Helpdesk", true)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, first))

		second, err := notification.NewEmailSettings("smtp2.example.edu", 465, "mailer", "secret2", "help@example.edu", "Helpdesk", true)
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, second))

		found, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "smtp2.example.edu", found.Host())
		assert.Equal(t, 465, found.Port())

		var count int64
		require.NoError(t, gdb.Table("email_settings").Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}
