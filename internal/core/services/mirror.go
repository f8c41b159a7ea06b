package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Ensure MirrorService implements the interface.
var _ driving.MirrorService = (*MirrorService)(nil)

// MirrorService copies upstream collections into the local mirror.
// Unlike ContentService, fetch failures are reported: a sync must not
// replace a good mirror with an empty collection.
type MirrorService struct {
	upstream  driven.ContentStore
	mirror    driven.ContentMirror
	validator driven.ContentValidator
}

// NewMirrorService creates a mirror service. validator may be nil.
func NewMirrorService(upstream driven.ContentStore, mirror driven.ContentMirror, validator driven.ContentValidator) *MirrorService {
	return &MirrorService{
		upstream:  upstream,
		mirror:    mirror,
		validator: validator,
	}
}

// Sync refreshes the given kinds, or all kinds if none are given.
// Each kind is synced independently; the returned error joins the kinds
// that failed.
func (s *MirrorService) Sync(ctx context.Context, kinds ...domain.ContentKind) ([]domain.SyncResult, error) {
	if len(kinds) == 0 {
		kinds = domain.AllContentKinds()
	}

	logger.Section("Sync")
	results := make([]domain.SyncResult, 0, len(kinds))
	failed := 0
	for _, kind := range kinds {
		res := s.syncKind(ctx, kind)
		if !res.OK() {
			failed++
			logger.Warn("sync %s: %v", kind.Plural(), res.Err)
		} else {
			logger.Info("synced %d %s (%d rejected) in %v", res.Stored, kind.Plural(), res.Rejected, res.Duration)
		}
		results = append(results, res)
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d collections failed to sync", failed, len(kinds))
	}
	return results, nil
}

func (s *MirrorService) syncKind(ctx context.Context, kind domain.ContentKind) domain.SyncResult {
	start := time.Now()
	res := domain.SyncResult{Kind: kind}

	if !kind.IsValid() {
		res.Err = fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
		return res
	}

	items, err := s.upstream.Fetch(ctx, kind)
	if err != nil {
		res.Err = fmt.Errorf("fetch: %w", err)
		return res
	}

	if s.validator != nil {
		valid, errs := s.validator.Validate(items)
		for _, e := range errs {
			logger.Warn("rejected %s: %v", kind, e)
		}
		res.Rejected = len(items) - len(valid)
		items = valid
	}

	items, dropped := DedupeByID(items)
	res.Rejected += len(dropped)

	if err := s.mirror.Replace(ctx, kind, items); err != nil {
		res.Err = fmt.Errorf("store: %w", err)
		return res
	}

	res.Stored = len(items)
	res.Duration = time.Since(start)
	return res
}
