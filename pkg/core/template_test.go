package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sd/pkg/core"
)

func TestRenderTemplate(t *testing.T) {
	content, err := core.RenderTemplate("Groceries", "Monday, Jan 1, 2024")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "# Groceries\n")
	assert.Contains(t, content, "Created: Monday, Jan 1, 2024\n")

	t.Run("Fresh Note Has No Day Section", func(t *testing.T) {
		_, ok := core.LastDate(content)
		assert.False(t, ok)
	})

	t.Run("Frontmatter Round Trip", func(t *testing.T) {
		meta, body, err := core.SplitFrontmatter([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, "Groceries", meta.Title)
		assert.Equal(t, "Monday, Jan 1, 2024", meta.Created)
		assert.True(t, strings.HasPrefix(string(body), "\n# Groceries"))
	})

	t.Run("Title Needing Quotes", func(t *testing.T) {
		content, err := core.RenderTemplate("todo: urgent", "Monday, Jan 1, 2024")
		require.NoError(t, err)
		meta, _, err := core.SplitFrontmatter([]byte(content))
		require.NoError(t, err)
		assert.Equal(t, "todo: urgent", meta.Title)
	})
}

func TestSplitFrontmatter_None(t *testing.T) {
	meta, body, err := core.SplitFrontmatter([]byte("# Plain\n"))
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Equal(t, "# Plain\n", string(body))
}
