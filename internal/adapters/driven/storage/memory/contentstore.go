package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure ContentStore implements the interfaces.
var (
	_ driven.ContentStore  = (*ContentStore)(nil)
	_ driven.ContentMirror = (*ContentStore)(nil)
)

// ContentStore is an in-memory content collection per kind.
type ContentStore struct {
	mu     sync.RWMutex
	items  map[domain.ContentKind][]domain.ContentItem
	synced map[domain.ContentKind]time.Time

	// FetchErr, when set, is returned by Fetch. Used to exercise
	// the empty-collection fallback.
	FetchErr error
}

// NewContentStore creates a store holding items, grouped by their kind.
func NewContentStore(items ...domain.ContentItem) *ContentStore {
	s := &ContentStore{
		items:  make(map[domain.ContentKind][]domain.ContentItem),
		synced: make(map[domain.ContentKind]time.Time),
	}
	for _, item := range items {
		s.items[item.Kind] = append(s.items[item.Kind], item)
	}
	return s
}

// Fetch returns a copy of the items of a kind in insertion order.
func (s *ContentStore) Fetch(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	items := s.items[kind]
	out := make([]domain.ContentItem, len(items))
	copy(out, items)
	return out, nil
}

// FetchBySlug returns the first item of a kind with the slug.
func (s *ContentStore) FetchBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items[kind] {
		if item.Slug == slug {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s %q: %w", kind, slug, domain.ErrNotFound)
}

// Replace swaps the items of a kind.
func (s *ContentStore) Replace(_ context.Context, kind domain.ContentKind, items []domain.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]domain.ContentItem, len(items))
	copy(cp, items)
	s.items[kind] = cp
	s.synced[kind] = time.Now()
	return nil
}

// LastSynced returns when a kind was last replaced.
func (s *ContentStore) LastSynced(_ context.Context, kind domain.ContentKind) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced[kind], nil
}

// Close is a no-op.
func (s *ContentStore) Close() error {
	return nil
}
