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

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService loads collections from the content store.
type ContentService struct {
	store     driven.ContentStore
	validator driven.ContentValidator
	timeout   time.Duration
}

// NewContentService creates a content service.
// validator may be nil. A non-positive timeout uses domain.DefaultContentTimeout.
func NewContentService(
	store driven.ContentStore,
	validator driven.ContentValidator,
	timeout time.Duration,
) *ContentService {
	if timeout <= 0 {
		timeout = domain.DefaultContentTimeout
	}
	return &ContentService{
		store:     store,
		validator: validator,
		timeout:   timeout,
	}
}

// List fetches, validates, de-duplicates and orders a collection.
// A failed or timed-out fetch is logged and returns an empty collection.
func (s *ContentService) List(ctx context.Context, kind domain.ContentKind) ([]domain.ContentItem, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}

	logger.Section("Content")
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	items, err := s.store.Fetch(ctx, kind)
	if err != nil {
		logger.Warn("fetch %s failed, showing empty listing: %v", kind.Plural(), err)
		return []domain.ContentItem{}, nil
	}
	logger.Debug("fetched %d %s in %v", len(items), kind.Plural(), time.Since(start))

	items = s.validate(items)

	items, dropped := DedupeByID(items)
	for _, id := range dropped {
		logger.Warn("duplicate %s id %q dropped", kind, id)
	}

	SortForKind(kind, items)
	return items, nil
}

// Get fetches one item by slug.
func (s *ContentService) Get(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: empty slug", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	item, err := s.store.FetchBySlug(ctx, kind, slug)
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", kind, slug, err)
	}

	if s.validator != nil {
		valid, errs := s.validator.Validate([]domain.ContentItem{*item})
		if len(valid) == 0 {
			return nil, fmt.Errorf("get %s %q: %w: %v", kind, slug, domain.ErrInvalidInput, errs)
		}
	}
	return item, nil
}

func (s *ContentService) validate(items []domain.ContentItem) []domain.ContentItem {
	if s.validator == nil {
		return items
	}
	valid, errs := s.validator.Validate(items)
	for _, err := range errs {
		logger.Warn("rejected content item: %v", err)
	}
	return valid
}
