package public

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/application/ticket/usecases"
	"deskhub/internal/interfaces/http/handlers/testutil"
	"deskhub/internal/shared/errors"
)

type mockCreateTicketExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &usecases.CreateTicketResult{}, nil
}

type mockCheckStatusExecutor struct {
	executeFn func(ctx context.Context, query usecases.CheckStatusQuery) (*usecases.CheckStatusResult, error)
}

func (m *mockCheckStatusExecutor) Execute(ctx context.Context, query usecases.CheckStatusQuery) (*usecases.CheckStatusResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return &usecases.CheckStatusResult{}, nil
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

func newIntakeHandler(createUC usecases.CreateTicketExecutor, saveUC usecases.SaveAttachmentExecutor, checkUC usecases.CheckStatusExecutor) *IntakeHandler {
	return NewIntakeHandler(nil, nil, createUC, saveUC, checkUC, 10, testutil.NewMockLogger())
}

func TestIntakeHandler_CreateTicket_JSON(t *testing.T) {
	t.Run("passes dynamic values through to the use case", func(t *testing.T) {
		createUC := &mockCreateTicketExecutor{}
		var gotCmd usecases.CreateTicketCommand
		createUC.executeFn = func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			gotCmd = cmd
			return &usecases.CreateTicketResult{
				TicketID:  42,
				DisplayID: "HD-2025-0042",
				CreatedAt: time.Now().UTC(),
			}, nil
		}
		handler := newIntakeHandler(createUC, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/public/tickets", map[string]interface{}{
			"category_id":    3,
			"title":          "Projector will not turn on",
			"description":    "Room 204 projector shows no signal.",
			"reporter_name":  "Dana Whitfield",
			"reporter_email": "dana@example.edu",
			"building":       "Science Hall",
			"room":           "204",
			"dynamic_values": map[string]string{
				"asset_tag": "PRJ-1182",
				"urgency":   "high",
			},
		})
		handler.CreateTicket(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(3), gotCmd.CategoryID)
		assert.Equal(t, "Projector will not turn on", gotCmd.Title)
		assert.Equal(t, "dana@example.edu", gotCmd.ReporterEmail)
		assert.Equal(t, "PRJ-1182", gotCmd.DynamicValues["asset_tag"])
		assert.NotEmpty(t, gotCmd.ReporterIP)
	})

	t.Run("rejects a body without category_id", func(t *testing.T) {
		handler := newIntakeHandler(&mockCreateTicketExecutor{}, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/public/tickets", map[string]interface{}{
			"title": "no category",
		})
		handler.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("surfaces validation errors from the use case", func(t *testing.T) {
		createUC := &mockCreateTicketExecutor{
			executeFn: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
				return nil, errors.NewValidationError("title is required")
			},
		}
		handler := newIntakeHandler(createUC, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := testutil.NewTestContext(http.MethodPost, "/api/public/tickets", map[string]interface{}{
			"category_id": 3,
		})
		handler.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntakeHandler_CreateTicket_Multipart(t *testing.T) {
	buildMultipart := func(t *testing.T, fields map[string]string, withFile bool) (*gin.Context, *httptest.ResponseRecorder) {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		for k, v := range fields {
			require.NoError(t, writer.WriteField(k, v))
		}
		if withFile {
			part, err := writer.CreateFormFile("attachment", "photo.jpg")
			require.NoError(t, err)
			_, err = part.Write([]byte("jpeg-bytes"))
			require.NoError(t, err)
		}
		require.NoError(t, writer.Close())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/public/tickets", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		c, _ := gin.CreateTestContext(w)
		c.Request = req

		return c, w
	}

	t.Run("collects non-builtin keys as dynamic values", func(t *testing.T) {
		createUC := &mockCreateTicketExecutor{}
		var gotCmd usecases.CreateTicketCommand
		createUC.executeFn = func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
			gotCmd = cmd
			return &usecases.CreateTicketResult{TicketID: 7, DisplayID: "HD-2025-0007"}, nil
		}
		handler := newIntakeHandler(createUC, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := buildMultipart(t, map[string]string{
			"category_id":   "3",
			"title":         "Broken chair",
			"reporter_name": "Sam Ortiz",
			"asset_tag":     "CHAIR-55",
		}, false)
		handler.CreateTicket(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(3), gotCmd.CategoryID)
		assert.Equal(t, "Broken chair", gotCmd.Title)
		assert.Equal(t, map[string]string{"asset_tag": "CHAIR-55"}, gotCmd.DynamicValues)
	})

	t.Run("stores the attachment after the ticket is created", func(t *testing.T) {
		createUC := &mockCreateTicketExecutor{
			executeFn: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
				return &usecases.CreateTicketResult{TicketID: 8, DisplayID: "HD-2025-0008"}, nil
			},
		}
		saveUC := &mockSaveAttachmentExecutor{}
		var gotSave usecases.SaveAttachmentCommand
		saveUC.executeFn = func(ctx context.Context, cmd usecases.SaveAttachmentCommand) (*usecases.SaveAttachmentResult, error) {
			gotSave = cmd
			return &usecases.SaveAttachmentResult{AttachmentID: 1}, nil
		}
		handler := newIntakeHandler(createUC, saveUC, &mockCheckStatusExecutor{})

		c, w := buildMultipart(t, map[string]string{
			"category_id":   "3",
			"title":         "Leaking faucet",
			"reporter_name": "Sam Ortiz",
		}, true)
		handler.CreateTicket(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(8), gotSave.TicketID)
		assert.Equal(t, "photo.jpg", gotSave.FileName)
		assert.Equal(t, "Sam Ortiz", gotSave.UploaderName)
		assert.Nil(t, gotSave.CommentID)
		assert.Nil(t, gotSave.UploaderID)
	})

	t.Run("rejects a form without category_id", func(t *testing.T) {
		handler := newIntakeHandler(&mockCreateTicketExecutor{}, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := buildMultipart(t, map[string]string{"title": "missing category"}, false)
		handler.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIntakeHandler_CheckStatus(t *testing.T) {
	t.Run("requires both number and email", func(t *testing.T) {
		handler := newIntakeHandler(&mockCreateTicketExecutor{}, &mockSaveAttachmentExecutor{}, &mockCheckStatusExecutor{})

		c, w := testutil.NewTestContext(http.MethodGet, "/api/public/tickets/status", nil)
		testutil.SetQueryParams(c, map[string]string{"number": "HD-2025-0042"})
		handler.CheckStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("passes both lookup keys to the use case", func(t *testing.T) {
		checkUC := &mockCheckStatusExecutor{}
		var gotQuery usecases.CheckStatusQuery
		checkUC.executeFn = func(ctx context.Context, query usecases.CheckStatusQuery) (*usecases.CheckStatusResult, error) {
			gotQuery = query
			return &usecases.CheckStatusResult{}, nil
		}
		handler := newIntakeHandler(&mockCreateTicketExecutor{}, &mockSaveAttachmentExecutor{}, checkUC)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/public/tickets/status", nil)
		testutil.SetQueryParams(c, map[string]string{
			"number": "HD-2025-0042",
			"email":  "dana@example.edu",
		})
		handler.CheckStatus(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "HD-2025-0042", gotQuery.DisplayID)
		assert.Equal(t, "dana@example.edu", gotQuery.Email)
	})

	t.Run("returns not found when the pair does not match", func(t *testing.T) {
		checkUC := &mockCheckStatusExecutor{
			executeFn: func(ctx context.Context, query usecases.CheckStatusQuery) (*usecases.CheckStatusResult, error) {
				return nil, errors.NewNotFoundError("no ticket matches that number and email")
			},
		}
		handler := newIntakeHandler(&mockCreateTicketExecutor{}, &mockSaveAttachmentExecutor{}, checkUC)

		c, w := testutil.NewTestContext(http.MethodGet, "/api/public/tickets/status", nil)
		testutil.SetQueryParams(c, map[string]string{
			"number": "HD-2025-9999",
			"email":  "nobody@example.edu",
		})
		handler.CheckStatus(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
