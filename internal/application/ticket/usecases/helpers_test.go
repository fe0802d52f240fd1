package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/agent"
	"deskhub/internal/domain/catalog"
	"deskhub/internal/domain/ticket"
	"deskhub/internal/shared/logger"
)

func uintPtr(v uint) *uint { return &v }

func testLogger() logger.Interface {
	_ = logger.Init(logger.Options{Level: "error", Format: "console"})
	return logger.NewLogger()
}

func fixtureProject(t *testing.T, id uint, active bool) *catalog.Project {
	t.Helper()
	p, err := catalog.ReconstructProject(id, "Helpdesk", "", "it@example.edu", active, time.Now(), time.Now())
	require.NoError(t, err)
	return p
}

func fixtureStatus(t *testing.T, id uint, code string, isDefault, resolved, closed bool) *catalog.Status {
	t.Helper()
	s, err := catalog.ReconstructStatus(id, code, code, "#777777", isDefault, resolved, closed, int(id), time.Now(), time.Now())
	require.NoError(t, err)
	return s
}

func fixtureAgent(t *testing.T, id uint, role agent.Role, projectIDs []uint) *agent.Agent {
	t.Helper()
	a, err := agent.ReconstructAgent(id, "agent", "agent@example.edu", "Sam Agent", "hash", role, true, projectIDs, time.Now(), time.Now())
	require.NoError(t, err)
	return a
}

func fixtureTicket(t *testing.T, id, projectID, statusID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.Reconstruct(ticket.Snapshot{
		ID:          id,
		DisplayID:   "HEL-2026-00001",
		Title:       "Printer jam",
		Description: "Paper stuck in tray 2",
		Reporter:    ticket.Reporter{Name: "Dana Reporter", Email: "dana@example.edu"},
		ProjectID:   projectID,
		StatusID:    statusID,
		AssigneeID:  assigneeID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	})
	require.NoError(t, err)
	return tk
}

func fixtureCategory(t *testing.T, id, projectID uint, fields []*catalog.FormField) *catalog.Category {
	t.Helper()
	c, err := catalog.ReconstructCategory(id, projectID, "Printer", "", true, time.Now(), time.Now())
	require.NoError(t, err)
	c.AttachFields(fields)
	return c
}

func fixtureBinding(t *testing.T, id uint, name string, fieldType catalog.FieldType, required bool) *catalog.FormField {
	t.Helper()
	choices := ""
	if fieldType == catalog.FieldTypeSelect {
		choices = `{"hq": "Headquarters"}`
	}
	tmpl, err := catalog.ReconstructFieldTemplate(id, name, "Label "+name, fieldType, "", choices, true, time.Now(), time.Now())
	require.NoError(t, err)
	f, err := catalog.ReconstructFormField(id, 5, id, "", "", required, int(id), true, time.Now(), time.Now())
	require.NoError(t, err)
	f.AttachTemplate(tmpl)
	return f
}
