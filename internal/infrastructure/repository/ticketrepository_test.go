package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/ticket"
	apperrors "deskhub/internal/shared/errors"
)

func TestTicketRepository_SaveAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	project := seedProject(t, gdb, "Helpdesk")
	status := seedStatus(t, gdb, "new", true, false, false)

	t.Run("save assigns ID and round-trips custom data", func(t *testing.T) {
		reporter := ticket.Reporter{
			Name:     "Pat Reporter",
			Email:    "pat@example.edu",
			Building: "Science Hall",
			Room:     "204",
		}
		tk, err := ticket.NewTicket("Projector flickers", "The ceiling projector flickers every few minutes.",
			reporter, project.ID(), nil, map[string]interface{}{"asset_tag": "PRJ-0042", "affected_users": float64(12)})
		require.NoError(t, err)
		require.NoError(t, tk.ApplyStatus(status))
		require.NoError(t, tk.SetDisplayID("HEL-2026-00001"))

		require.NoError(t, repo.Save(ctx, tk))
		assert.NotZero(t, tk.ID())

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "HEL-2026-00001", found.DisplayID())
		assert.Equal(t, "Science Hall", found.Reporter().Building)
		assert.Equal(t, "PRJ-0042", found.CustomData()["asset_tag"])
		assert.EqualValues(t, 12, found.CustomData()["affected_users"])
	})

	t.Run("duplicate display ID surfaces as conflict", func(t *testing.T) {
		first := seedTicket(t, gdb, "HEL-2026-00777", project.ID(), status)
		require.NotZero(t, first.ID())

		reporter := ticket.Reporter{Name: "Sam Other", Email: "sam@example.edu"}
		second, err := ticket.NewTicket("Same number", "Raced with the first one.", reporter, project.ID(), nil, nil)
		require.NoError(t, err)
		require.NoError(t, second.ApplyStatus(status))
		require.NoError(t, second.SetDisplayID("HEL-2026-00777"))

		err = repo.Save(ctx, second)
		require.Error(t, err)
		assert.True(t, apperrors.IsConflict(err))
	})

	t.Run("get by unknown ID returns nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTicketRepository_GetByDisplayID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	project := seedProject(t, gdb, "Helpdesk")
	status := seedStatus(t, gdb, "new", true, false, false)
	seedTicket(t, gdb, "HEL-2026-00005", project.ID(), status)

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.GetByDisplayID(ctx, "hel-2026-00005")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "HEL-2026-00005", found.DisplayID())
	})

	t.Run("unknown display ID returns nil", func(t *testing.T) {
		found, err := repo.GetByDisplayID(ctx, "HEL-2026-99999")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTicketRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	helpdesk := seedProject(t, gdb, "Helpdesk")
	facilities := seedProject(t, gdb, "Facilities")
	open := seedStatus(t, gdb, "new", true, false, false)
	resolved := seedStatus(t, gdb, "resolved", false, true, false)

	seedTicket(t, gdb, "HEL-2026-00001", helpdesk.ID(), open)
	seedTicket(t, gdb, "HEL-2026-00002", helpdesk.ID(), resolved)
	seedTicket(t, gdb, "FAC-2026-00001", facilities.ID(), open)

	t.Run("scope restricts to member projects", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{
			ScopeProjectIDs: []uint{helpdesk.ID()},
			Page:            1,
			PageSize:        20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, tk := range tickets {
			assert.Equal(t, helpdesk.ID(), tk.ProjectID())
		}
	})

	t.Run("active filter excludes resolved tickets", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.Filter{
			ShowActive: true,
			Page:       1,
			PageSize:   20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("completed filter returns only resolved tickets", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{
			ShowCompleted: true,
			Page:          1,
			PageSize:      20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, tickets, 1)
		assert.Equal(t, "HEL-2026-00002", tickets[0].DisplayID())
	})

	t.Run("search matches display ID and reporter", func(t *testing.T) {
		_, total, err := repo.List(ctx, ticket.Filter{
			Search:   "FAC-2026",
			Page:     1,
			PageSize: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		_, total, err = repo.List(ctx, ticket.Filter{
			Search:   "pat@example.edu",
			Page:     1,
			PageSize: 20,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
	})

	t.Run("pagination slices the result", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.Filter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, tickets, 1)
	})
}

func TestTicketRepository_SequenceSource(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	project := seedProject(t, gdb, "Helpdesk")
	other := seedProject(t, gdb, "Facilities")
	status := seedStatus(t, gdb, "new", true, false, false)

	year := time.Now().Year()
	prefix := formatPrefix("HEL", year)
	seedTicket(t, gdb, prefix+"00001", project.ID(), status)
	seedTicket(t, gdb, prefix+"00003", project.ID(), status)
	seedTicket(t, gdb, formatPrefix("FAC", year)+"00009", other.ID(), status)

	t.Run("last display ID is the highest for the prefix", func(t *testing.T) {
		last, err := repo.LastDisplayID(ctx, project.ID(), prefix)
		require.NoError(t, err)
		assert.Equal(t, prefix+"00003", last)
	})

	t.Run("no tickets yields empty last ID", func(t *testing.T) {
		last, err := repo.LastDisplayID(ctx, project.ID(), "HEL-1999-")
		require.NoError(t, err)
		assert.Empty(t, last)
	})

	t.Run("count for project year ignores other projects", func(t *testing.T) {
		count, err := repo.CountForProjectYear(ctx, project.ID(), year)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("count by prefix spans projects", func(t *testing.T) {
		count, err := repo.CountByPrefix(ctx, formatPrefix("FAC", year))
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})
}

func TestTicketRepository_ReferenceCounts(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	project := seedProject(t, gdb, "Helpdesk")
	status := seedStatus(t, gdb, "new", true, false, false)
	seedTicket(t, gdb, "HEL-2026-00020", project.ID(), status)
	seedTicket(t, gdb, "HEL-2026-00021", project.ID(), status)

	count, err := repo.CountByProject(ctx, project.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByStatus(ctx, status.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByCategory(ctx, 12345)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTicketRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	project := seedProject(t, gdb, "Helpdesk")
	open := seedStatus(t, gdb, "new", true, false, false)
	resolved := seedStatus(t, gdb, "resolved", false, true, false)

	tk := seedTicket(t, gdb, "HEL-2026-00030", project.ID(), open)

	require.NoError(t, tk.ApplyStatus(resolved))
	require.NoError(t, tk.AssignTo(7))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, resolved.ID(), found.StatusID())
	require.NotNil(t, found.AssigneeID())
	assert.EqualValues(t, 7, *found.AssigneeID())
	assert.NotNil(t, found.ResolvedAt())
	assert.Nil(t, found.ClosedAt())

	// Moving back to an open status clears the derived timestamp.
	require.NoError(t, found.ApplyStatus(open))
	require.NoError(t, repo.Update(ctx, found))

	reread, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, reread.ResolvedAt())
}

func formatPrefix(code string, year int) string {
	return fmt.Sprintf("%s-%d-", code, year)
}
