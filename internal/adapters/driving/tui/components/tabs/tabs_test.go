package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

func categories() []domain.Category {
	return []domain.Category{
		{ID: domain.CategoryAll, Label: domain.AllArticlesLabel},
		{ID: "ai", Label: "ai"},
		{ID: "web", Label: "web development"},
	}
}

func TestTabs_NextPrevWrap(t *testing.T) {
	tb := New(nil)
	tb.Set(categories(), domain.CategoryAll)

	assert.Equal(t, "ai", tb.Next())
	assert.Equal(t, "web", tb.Prev())

	tb.Set(categories(), "web")
	assert.Equal(t, domain.CategoryAll, tb.Next())
}

func TestTabs_UnknownActiveGoesToFirst(t *testing.T) {
	tb := New(nil)
	tb.Set(categories(), "gone")

	assert.Equal(t, domain.CategoryAll, tb.Next())
	assert.Equal(t, domain.CategoryAll, tb.Prev())
}

func TestTabs_NoCategories(t *testing.T) {
	tb := New(nil)

	assert.Equal(t, domain.CategoryAll, tb.Next())
	assert.Empty(t, tb.View())
}

func TestTabs_ViewTitleCasesLabels(t *testing.T) {
	tb := New(nil)
	tb.Set(categories(), "ai")

	view := tb.View()
	assert.Contains(t, view, domain.AllArticlesLabel)
	assert.Contains(t, view, "Web Development")
	assert.Equal(t, "ai", tb.Active())
}

func TestTabs_Wraps(t *testing.T) {
	tb := New(nil)
	tb.SetWidth(20)
	tb.Set(categories(), domain.CategoryAll)

	assert.Contains(t, tb.View(), "\n")
}
