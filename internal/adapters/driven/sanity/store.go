package sanity

import (
	"context"
	"fmt"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

// Store fetches content straight from the query API.
type Store struct {
	client *Client
}

// NewStore creates a store over a query client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Fetch returns every published document of a kind.
func (s *Store) Fetch(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	q, err := ListQuery(kind)
	if err != nil {
		return nil, err
	}

	var raws []rawDocument
	if err := s.client.Query(ctx, q, map[string]any{"type": string(kind)}, &raws); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", kind.Plural(), err)
	}

	items := make([]domain.ContentItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, decodeDocument(raw, kind))
	}
	return items, nil
}

// FetchBySlug returns one document or domain.ErrNotFound.
func (s *Store) FetchBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	q, err := SlugQuery(kind)
	if err != nil {
		return nil, err
	}

	var raw *rawDocument
	params := map[string]any{"type": string(kind), "slug": slug}
	if err := s.client.Query(ctx, q, params, &raw); err != nil {
		return nil, fmt.Errorf("fetch %s %q: %w", kind, slug, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s %q: %w", kind, slug, domain.ErrNotFound)
	}

	item := decodeDocument(*raw, kind)
	return &item, nil
}
