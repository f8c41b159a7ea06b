package driving

import (
	"context"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// MirrorService copies content from the upstream store into the local mirror.
type MirrorService interface {
	// Sync refreshes the given kinds, or all kinds if none are given.
	Sync(ctx context.Context, kinds ...domain.ContentKind) ([]domain.SyncResult, error)
}
