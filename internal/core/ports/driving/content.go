package driving

import (
	"context"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// ContentService reads ordered content collections.
type ContentService interface {
	// List returns the ordered collection for a kind.
	// Store failures are logged and yield an empty collection; only an
	// unsupported kind is an error.
	List(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error)

	// Get returns one item by slug. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error)
}
