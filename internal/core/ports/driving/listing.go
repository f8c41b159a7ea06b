package driving

import (
	"context"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// ItemView is the listing read model over content items.
type ItemView = domain.ListingView[domain.ContentItem]

// ListingService runs listing controllers for adapters.
type ListingService interface {
	// Open loads a collection and starts a session in the initial state.
	Open(ctx context.Context, kind domain.ContentKind) (string, ItemView, error)

	// Apply performs one transition on a session.
	// Returns domain.ErrSessionNotFound for unknown ids.
	Apply(sessionID string, action domain.ListingAction) (ItemView, error)

	// View returns the current read model of a session.
	View(sessionID string) (ItemView, error)

	// Close discards a session.
	Close(sessionID string) error

	// Evaluate builds a view from the initial state without keeping a session.
	Evaluate(ctx context.Context, kind domain.ContentKind, q domain.ListingQuery) (ItemView, error)
}
