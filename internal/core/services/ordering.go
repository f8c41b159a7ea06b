package services

import (
	"slices"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// SortForKind orders a collection the way its listing displays it:
//
//   - posts: publishedAt descending
//   - works: explicit order ascending (unset last), then createdAt descending
//   - practices: createdAt descending
//
// The sort is stable, so equal keys keep store order. items is sorted in place.
func SortForKind(kind domain.ContentKind, items []domain.ContentItem) {
	switch kind {
	case domain.KindPost:
		slices.SortStableFunc(items, func(a, b domain.ContentItem) int {
			return b.PublishedAt.Compare(a.PublishedAt)
		})
	case domain.KindWork:
		slices.SortStableFunc(items, compareWorks)
	default:
		slices.SortStableFunc(items, func(a, b domain.ContentItem) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

func compareWorks(a, b domain.ContentItem) int {
	switch {
	case a.Order != nil && b.Order != nil:
		if *a.Order != *b.Order {
			return *a.Order - *b.Order
		}
	case a.Order != nil:
		return -1
	case b.Order != nil:
		return 1
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

// DedupeByID drops items whose id was already seen, keeping the first.
// It returns the kept items and the dropped ids.
func DedupeByID(items []domain.ContentItem) ([]domain.ContentItem, []string) {
	seen := make(map[string]struct{}, len(items))
	out := make([]domain.ContentItem, 0, len(items))
	var dropped []string
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			dropped = append(dropped, item.ID)
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out, dropped
}
