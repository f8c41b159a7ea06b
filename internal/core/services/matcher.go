package services

import (
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// Matcher evaluates the category and free-text predicates of a listing.
type Matcher[T any] struct {
	schema Schema[T]

	// labels maps taxonomy ids to their labels.
	labels map[string]string
}

// NewMatcher creates a matcher for the given schema.
func NewMatcher[T any](schema Schema[T]) Matcher[T] {
	return Matcher[T]{schema: schema}
}

// WithTaxonomy returns a matcher that resolves category ids through cats,
// so an id selects every item carrying the same label.
func (m Matcher[T]) WithTaxonomy(cats []domain.Category) Matcher[T] {
	labels := make(map[string]string, len(cats))
	for _, c := range cats {
		labels[c.ID] = c.Label
	}
	m.labels = labels
	return m
}

// Matches reports whether item passes both the category and the search predicate.
func (m Matcher[T]) Matches(item T, activeCategory, query string) bool {
	return m.matchesCategory(item, activeCategory) && m.matchesQuery(item, query)
}

// Filter returns the matching items in input order.
func (m Matcher[T]) Filter(items []T, activeCategory, query string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.Matches(item, activeCategory, query) {
			out = append(out, item)
		}
	}
	return out
}

// matchesCategory joins on the reference id or on the label the active id
// stands for. Without a taxonomy entry the active value is taken as a label,
// which covers label-keyed collections where id and label are equal.
func (m Matcher[T]) matchesCategory(item T, activeCategory string) bool {
	if activeCategory == domain.CategoryAll {
		return true
	}
	label, ok := m.labels[activeCategory]
	if !ok {
		label = activeCategory
	}
	for _, ref := range m.schema.Categories(item) {
		if ref.ID == activeCategory || (ref.Label != "" && ref.Label == label) {
			return true
		}
	}
	return false
}

func (m Matcher[T]) matchesQuery(item T, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(m.schema.SearchableText(item)), q) {
		return true
	}
	if m.schema.Tags != nil {
		for _, tag := range m.schema.Tags(item) {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
	}
	for _, ref := range m.schema.Categories(item) {
		if strings.Contains(strings.ToLower(ref.Label), q) {
			return true
		}
	}
	return false
}
