package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/infrastructure/migration"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(migration.AllModels()...))

	return gdb
}

func seedProject(t *testing.T, gdb *gorm.DB, name string) *catalog.Project {
	t.Helper()

	project, err := catalog.NewProject(name, "", "")
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(gdb).Save(context.Background(), project))
	return project
}

func seedStatus(t *testing.T, gdb *gorm.DB, code string, isDefault, resolved, closed bool) *catalog.Status {
	t.Helper()

	status, err := catalog.NewStatus(code, code, "#5cb85c", isDefault, resolved, closed, 10)
	require.NoError(t, err)
	require.NoError(t, NewStatusRepository(gdb).Save(context.Background(), status))
	return status
}

func seedTicket(t *testing.T, gdb *gorm.DB, displayID string, projectID uint, status *catalog.Status) *ticket.Ticket {
	t.Helper()

	reporter := ticket.Reporter{Name: "Pat Reporter", Email: "pat@example.edu"}
	tk, err := ticket.NewTicket("Printer jam", "The tray 2 printer keeps jamming.", reporter, projectID, nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.ApplyStatus(status))
	require.NoError(t, tk.SetDisplayID(displayID))
	require.NoError(t, NewTicketRepository(gdb).Save(context.Background(), tk))
	return tk
}

func fixtureFieldTemplate(t *testing.T, gdb *gorm.DB, name string) *catalog.FieldTemplate {
	t.Helper()

	template, err := catalog.NewFieldTemplate(name, "Label "+name, catalog.FieldTypeChar, "", "")
	require.NoError(t, err)
	require.NoError(t, NewFieldTemplateRepository(gdb).Save(context.Background(), template))
	return template
}
