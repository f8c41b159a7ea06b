package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// --- Fixtures ---

func post(id, title string, categories ...string) domain.ContentItem {
	refs := make([]domain.CategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, domain.CategoryRef{ID: c, Label: c})
	}
	return domain.ContentItem{
		ID:         id,
		Kind:       domain.KindPost,
		Slug:       id,
		Title:      title,
		Categories: refs,
	}
}

func work(id, title, categoryID, categoryLabel string, tags ...string) domain.ContentItem {
	item := domain.ContentItem{
		ID:    id,
		Kind:  domain.KindWork,
		Slug:  id,
		Title: title,
		Tags:  tags,
	}
	if categoryID != "" {
		item.Categories = []domain.CategoryRef{{ID: categoryID, Label: categoryLabel}}
	}
	return item
}

// numberedWorks returns n uncategorised works w0..w(n-1).
func numberedWorks(n int) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, n)
	for i := range n {
		items = append(items, work(fmt.Sprintf("w%d", i), fmt.Sprintf("Work %d", i), "", ""))
	}
	return items
}

func ids(items []domain.ContentItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int {
	return &n
}

// --- Mock implementations ---

// mockClipboard implements driven.Clipboard for testing.
type mockClipboard struct {
	mu     sync.Mutex
	text   string
	err    error
	writes int
}

func (m *mockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// mockHighlighter implements driven.Highlighter for testing.
type mockHighlighter struct {
	err error
}

func (m *mockHighlighter) Highlight(language, source string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "<" + language + ">" + source, nil
}

// mockImageResolver implements driven.ImageResolver for testing.
type mockImageResolver struct {
	err  error
	last domain.ImageOptions
}

func (m *mockImageResolver) URL(ref domain.ImageRef, opts domain.ImageOptions) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.last = opts
	return fmt.Sprintf("https://img.test/%s?w=%d", ref.AssetRef, opts.Width), nil
}

// mockValidator implements driven.ContentValidator, rejecting items without a title.
type mockValidator struct{}

func (mockValidator) Validate(items []domain.ContentItem) ([]domain.ContentItem, []error) {
	var valid []domain.ContentItem
	var errs []error
	for _, it := range items {
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s: %w", it.ID, domain.ErrInvalidInput))
			continue
		}
		valid = append(valid, it)
	}
	return valid, errs
}

// slowStore implements driven.ContentStore and blocks until ctx is done.
type slowStore struct{}

func (slowStore) Fetch(ctx context.Context, _ domain.ContentKind) ([]domain.ContentItem, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowStore) FetchBySlug(ctx context.Context, _ domain.ContentKind, _ string) (*domain.ContentItem, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// failingMirror implements driven.ContentMirror and fails on Replace.
type failingMirror struct {
	slowStore
}

func (failingMirror) Replace(context.Context, domain.ContentKind, []domain.ContentItem) error {
	return errors.New("disk full")
}

func (failingMirror) LastSynced(context.Context, domain.ContentKind) (time.Time, error) {
	return time.Time{}, nil
}

func (failingMirror) Close() error { return nil }
