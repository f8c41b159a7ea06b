package listing

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

func newListingService() *services.ListingService {
	content := services.NewContentService(memory.NewContentStore(memory.DemoContent()...), nil, 0)
	return services.NewListingService(content, nil)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// openView opens kind and feeds the resulting message back into the view.
func openView(t *testing.T, svc *services.ListingService, kind domain.ContentKind) *View {
	t.Helper()
	v := NewView(nil, nil, svc)
	cmd := v.Open(kind)
	require.NotNil(t, cmd)
	assert.Equal(t, domain.StatusLoading, v.Status())

	v.Update(cmd())
	require.Equal(t, domain.StatusReady, v.Status())
	return v
}

func TestView_OpenShowsCollection(t *testing.T) {
	svc := newListingService()
	v := openView(t, svc, domain.KindPost)

	assert.NotEmpty(t, v.SessionID())
	assert.Equal(t, 1, svc.Len())
	assert.Equal(t, 4, v.Current().TotalMatching)
	assert.Equal(t, domain.CategoryAll, v.Current().ActiveCategory)

	out := v.View()
	assert.Contains(t, out, "Blog")
	assert.Contains(t, out, "Showing")
}

func TestView_OpenWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.Update(v.Open(domain.KindWork)())

	assert.Equal(t, domain.StatusError, v.Status())
	assert.Error(t, v.Err())
	assert.Contains(t, v.View(), "Could not load works")
}

func TestView_StaleOpenIsClosed(t *testing.T) {
	svc := newListingService()
	v := NewView(nil, nil, svc)

	stale := v.Open(domain.KindPost)()
	v.Update(v.Open(domain.KindWork)())
	require.Equal(t, domain.KindWork, v.Kind())
	require.Equal(t, 2, svc.Len())

	v.Update(stale)
	assert.Equal(t, 1, svc.Len())
	assert.Equal(t, domain.KindWork, v.Kind())
}

func TestView_SearchAppliesLiveQuery(t *testing.T) {
	v := openView(t, newListingService(), domain.KindPost)

	_, cmd := v.Update(keyRune('/'))
	assert.NotNil(t, cmd)
	require.True(t, v.Searching())

	for _, r := range "rag" {
		v.Update(keyRune(r))
	}
	assert.Equal(t, "rag", v.Current().SearchQuery)
	assert.Equal(t, 1, v.Current().TotalMatching)
	assert.Empty(t, v.Current().Featured)

	v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, v.Searching())
	assert.Equal(t, "rag", v.Current().SearchQuery)
}

func TestView_EmptySearchMessage(t *testing.T) {
	v := openView(t, newListingService(), domain.KindPost)
	v.Update(keyRune('/'))
	for _, r := range "zzz" {
		v.Update(keyRune(r))
	}

	assert.True(t, v.Current().IsEmpty)
	assert.Contains(t, v.View(), `No posts match "zzz"`)
}

func TestView_CategoryTabs(t *testing.T) {
	v := openView(t, newListingService(), domain.KindWork)

	v.Update(keyRune('l'))
	assert.NotEqual(t, domain.CategoryAll, v.Current().ActiveCategory)
	assert.Equal(t, 1, v.Current().TotalMatching)

	v.Update(keyRune('h'))
	assert.Equal(t, domain.CategoryAll, v.Current().ActiveCategory)
	assert.Equal(t, 3, v.Current().TotalMatching)
}

func TestView_ResetClearsFilters(t *testing.T) {
	v := openView(t, newListingService(), domain.KindPost)
	v.Update(keyRune('/'))
	v.Update(keyRune('a'))
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(keyRune('l'))

	v.Update(keyRune('r'))
	assert.Equal(t, domain.CategoryAll, v.Current().ActiveCategory)
	assert.Empty(t, v.Current().SearchQuery)
	assert.Equal(t, 4, v.Current().TotalMatching)
}

func TestView_LoadMoreOnlyWhenMore(t *testing.T) {
	v := openView(t, newListingService(), domain.KindPost)
	require.False(t, v.Current().HasMore)
	before := v.Current().VisibleCount

	v.Update(keyRune('m'))
	assert.Equal(t, before, v.Current().VisibleCount)
}

func TestView_SelectOpensArticle(t *testing.T) {
	v := openView(t, newListingService(), domain.KindPost)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ArticleSelected)
	require.True(t, ok)
	assert.Equal(t, "shipping-ai-agents", msg.Item.Slug)
}

func TestView_BackClosesSession(t *testing.T) {
	svc := newListingService()
	v := openView(t, svc, domain.KindPractice)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
	assert.Empty(t, v.SessionID())
	assert.Equal(t, 0, svc.Len())
}

func TestView_ApplyErrorShowsError(t *testing.T) {
	svc := newListingService()
	v := openView(t, svc, domain.KindPost)
	require.NoError(t, svc.Close(v.SessionID()))

	v.Update(keyRune('r'))
	assert.Equal(t, domain.StatusError, v.Status())
	assert.True(t, errors.Is(v.Err(), domain.ErrSessionNotFound))
}
