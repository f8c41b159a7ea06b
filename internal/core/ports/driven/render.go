package driven

import "github.com/vabank-dev/vabank/internal/core/domain"

// ImageResolver turns an asset reference into a fetchable URL.
type ImageResolver interface {
	URL(ref domain.ImageRef, opts domain.ImageOptions) (string, error)
}

// Highlighter renders source code with syntax highlighting.
type Highlighter interface {
	// Highlight returns formatted output for the given language.
	// Unknown languages fall back to plain formatting.
	Highlight(language, source string) (string, error)
}

// Clipboard writes to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
