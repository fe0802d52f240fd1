package admin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"deskhub/internal/interfaces/http/handlers/testutil"
)

// Validation failures short-circuit before the service is touched, so a nil
// service is safe here.
func TestProjectHandler_Validation(t *testing.T) {
	t.Run("create rejects a body without a name", func(t *testing.T) {
		handler := NewProjectHandler(nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/projects", map[string]string{
			"description": "missing name",
		})
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update rejects a non-numeric id", func(t *testing.T) {
		handler := NewProjectHandler(nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPut, "/api/admin/projects/abc", map[string]string{
			"name": "Facilities",
		})
		testutil.SetURLParam(c, "id", "abc")
		handler.Update(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete rejects a zero id", func(t *testing.T) {
		handler := NewProjectHandler(nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/projects/0", nil)
		testutil.SetURLParam(c, "id", "0")
		handler.Delete(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
