package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("Your ticket **HD-2025-0042** was updated.")
		require.NoError(t, err)
		assert.Contains(t, out, "<strong>HD-2025-0042</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "hello")
	})

	t.Run("keeps single newlines as line breaks", func(t *testing.T) {
		out, err := svc.ToHTMLSanitized("line one\nline two")
		require.NoError(t, err)
		assert.Contains(t, out, "<br")
	})
}
