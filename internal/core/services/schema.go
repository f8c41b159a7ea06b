package services

import "github.com/vabank-dev/vabank/internal/core/domain"

// Schema tells the listing engine how to read a record type.
// ID, Categories and SearchableText are required; Tags and Featured may be nil.
type Schema[T any] struct {
	ID             func(T) string
	Categories     func(T) []domain.CategoryRef
	SearchableText func(T) string
	Tags           func(T) []string
	Featured       func(T) bool
}

// ContentSchema reads domain.ContentItem records.
// Featured is wired only for posts; works and practices have no featured strip.
func ContentSchema(kind domain.ContentKind) Schema[domain.ContentItem] {
	s := Schema[domain.ContentItem]{
		ID:             func(c domain.ContentItem) string { return c.ID },
		Categories:     func(c domain.ContentItem) []domain.CategoryRef { return c.Categories },
		SearchableText: func(c domain.ContentItem) string { return c.SearchableText() },
		Tags:           func(c domain.ContentItem) []string { return c.AllTags() },
	}
	if kind == domain.KindPost {
		s.Featured = func(c domain.ContentItem) bool { return c.Featured }
	}
	return s
}
