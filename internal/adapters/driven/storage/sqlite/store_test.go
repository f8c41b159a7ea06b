package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testItem(id, slug string, kind domain.ContentKind) domain.ContentItem {
	order := 2
	return domain.ContentItem{
		ID:          id,
		Kind:        kind,
		Slug:        slug,
		Title:       "Title " + id,
		Categories:  []domain.CategoryRef{{ID: "cat-web", Label: "Web"}},
		Tags:        []string{"go", "sqlite"},
		Order:       &order,
		CreatedAt:   time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		MainImage:   &domain.ImageRef{AssetRef: "image-abc-100x100-png", Alt: "cover"},
		Body: domain.RichDocument{Blocks: []domain.Block{
			{Type: domain.BlockHeading, Level: 2, Spans: []domain.Span{{Text: "Intro"}}},
			{Type: domain.BlockCode, Code: &domain.CodeBlock{Language: "go", Source: "package main"}},
		}},
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	store := setupTestStore(t)

	assert.FileExists(t, store.Path())
	v, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestStore_ReplaceAndFetch(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	items := []domain.ContentItem{
		testItem("w2", "second", domain.KindWork),
		testItem("w1", "first", domain.KindWork),
	}
	require.NoError(t, store.Replace(ctx, domain.KindWork, items))

	got, err := store.Fetch(ctx, domain.KindWork)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "w2", got[0].ID)
	assert.Equal(t, "w1", got[1].ID)
	assert.Equal(t, items[0], got[0])

	posts, err := store.Fetch(ctx, domain.KindPost)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestStore_ReplaceSwapsPreviousItems(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, domain.KindPost, []domain.ContentItem{testItem("p1", "a", domain.KindPost)}))
	require.NoError(t, store.Replace(ctx, domain.KindPost, []domain.ContentItem{testItem("p2", "b", domain.KindPost)}))

	n, err := store.Count(ctx, domain.KindPost)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.FetchBySlug(ctx, domain.KindPost, "a")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_FetchBySlug(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Replace(ctx, domain.KindPractice, []domain.ContentItem{testItem("x1", "ci-cd", domain.KindPractice)}))

	item, err := store.FetchBySlug(ctx, domain.KindPractice, "ci-cd")
	require.NoError(t, err)
	assert.Equal(t, "x1", item.ID)
	assert.Equal(t, "Intro", item.Body.Blocks[0].Spans[0].Text)

	_, err = store.FetchBySlug(ctx, domain.KindWork, "ci-cd")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_LastSynced(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	synced, err := store.LastSynced(ctx, domain.KindWork)
	require.NoError(t, err)
	assert.True(t, synced.IsZero())

	before := time.Now().Add(-time.Second)
	require.NoError(t, store.Replace(ctx, domain.KindWork, nil))

	synced, err = store.LastSynced(ctx, domain.KindWork)
	require.NoError(t, err)
	assert.True(t, synced.After(before))
}

func TestStore_ReplaceCancelledContext(t *testing.T) {
	store := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Replace(ctx, domain.KindWork, []domain.ContentItem{testItem("w", "w", domain.KindWork)})
	assert.Error(t, err)
}
