package services

import "github.com/vabank-dev/vabank/internal/core/domain"

// DeriveTaxonomy returns the synthetic "all" category followed by every
// distinct category label in first-seen order. Categories are de-duplicated
// by label: when two references share a label, the first id seen wins.
// Items without categories and references with empty labels are skipped.
func DeriveTaxonomy[T any](items []T, categories func(T) []domain.CategoryRef, allLabel string) []domain.Category {
	out := []domain.Category{{ID: domain.CategoryAll, Label: allLabel}}
	seen := make(map[string]struct{})

	for _, item := range items {
		for _, ref := range categories(item) {
			if ref.Label == "" {
				continue
			}
			if _, ok := seen[ref.Label]; ok {
				continue
			}
			seen[ref.Label] = struct{}{}

			id := ref.ID
			if id == "" {
				id = ref.Label
			}
			out = append(out, domain.Category{ID: id, Label: ref.Label})
		}
	}

	return out
}
