package driven

import (
	"context"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// ContentStore supplies content collections.
// Implementations decode their native shape into domain.ContentItem and
// return items in store order; ordering rules are applied by core.
type ContentStore interface {
	// Fetch returns every item of a kind.
	Fetch(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error)

	// FetchBySlug returns one item. Returns domain.ErrNotFound if absent.
	FetchBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error)
}

// ContentMirror is a writable local copy of the content store.
type ContentMirror interface {
	ContentStore

	// Replace atomically swaps the stored items of a kind.
	Replace(ctx context.Context, kind domain.ContentKind, items []domain.ContentItem) error

	// LastSynced returns when a kind was last replaced, zero if never.
	LastSynced(ctx context.Context, kind domain.ContentKind) (time.Time, error)

	// Close releases resources.
	Close() error
}

// ContentValidator checks decoded items at the store boundary.
type ContentValidator interface {
	// Validate returns the items that pass and one error per rejected item.
	Validate(items []domain.ContentItem) ([]domain.ContentItem, []error)
}

// ContentWatcher notifies when the underlying content changes.
type ContentWatcher interface {
	// Watch blocks until ctx is done, calling onChange after each change.
	Watch(ctx context.Context, onChange func()) error
}
