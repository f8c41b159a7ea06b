package driving

import "github.com/vabank-dev/vabank/internal/core/domain"

// RenderService turns rich documents into render instructions.
type RenderService interface {
	// Render maps each block to one instruction in document order.
	Render(doc domain.RichDocument) ([]domain.Instruction, error)

	// Article renders an item's body and derives its reading metadata.
	Article(item domain.ContentItem) (*domain.Article, error)
}

// CopyService copies text and exposes a transient "copied" indicator.
type CopyService interface {
	// Copy writes text to the clipboard. Failures are logged, never returned.
	Copy(text string)

	// Copied reports whether a copy succeeded within the indicator window.
	Copied() bool
}
