package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

func TestList_Posts(t *testing.T) {
	out := requireRun(t, demoServices(t), "list", "blog")

	assert.Contains(t, out, "Blog: 4 of 4")
	assert.Contains(t, out, "Featured:\n  * Shipping AI agents to production")
	assert.Contains(t, out, "[1] Shipping AI agents to production")
	assert.Contains(t, out, "/blog/rag-without-the-hype")
	assert.Contains(t, out, "March 4, 2025")
	assert.NotContains(t, out, "more. Run again")
}

func TestList_FilteredHidesFeatured(t *testing.T) {
	out := requireRun(t, demoServices(t), "list", "works", "--category", "cat-ai")

	assert.Contains(t, out, "Our Work: 1 of 1 (category Ai)")
	assert.Contains(t, out, "Support assistant")
	assert.NotContains(t, out, "Headless shop")
	assert.NotContains(t, out, "Featured:")
}

func TestList_Search(t *testing.T) {
	out := requireRun(t, demoServices(t), "list", "practices", "-q", "EVALS")

	assert.Contains(t, out, `(search "EVALS")`)
	assert.Contains(t, out, "LLM evals kit")
	assert.NotContains(t, out, "Sanity + Next starter")
}

func TestList_Empty(t *testing.T) {
	out := requireRun(t, demoServices(t), "list", "posts", "--query", "nothing-matches")

	assert.Contains(t, out, "Blog: 0 of 0")
	assert.Contains(t, out, "No posts match")
}

func TestList_JSON(t *testing.T) {
	out := requireRun(t, demoServices(t), "list", "posts", "--json")

	var view driving.ItemView
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &view))
	assert.Equal(t, 4, view.TotalMatching)
	assert.Equal(t, domain.CategoryAll, view.ActiveCategory)
}

func TestList_Errors(t *testing.T) {
	_, err := run(t, demoServices(t), "list", "videos")
	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)

	_, err = run(t, demoServices(t), "list", "posts", "--more", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, &Services{}, "list", "posts")
	assert.Error(t, err)
}

func TestCategories(t *testing.T) {
	out := requireRun(t, demoServices(t), "categories", "works")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "all")
	assert.Contains(t, out, "cat-ecommerce")
	assert.Contains(t, out, "Web App")
}
