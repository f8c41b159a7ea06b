// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewListing is a filterable, paginated listing.
	ViewListing
	// ViewArticle shows one rendered article.
	ViewArticle
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewListing:
		return "listing"
	case ViewArticle:
		return "article"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ListingSelected is sent when a collection is chosen from the menu.
// The app owns the selected kind and hands it to the listing view.
type ListingSelected struct {
	Kind domain.ContentKind
}

// ListingOpened carries a new listing session.
type ListingOpened struct {
	Kind      domain.ContentKind
	SessionID string
	View      driving.ItemView
	Err       error
}

// ArticleSelected is sent when an item is opened from a listing.
type ArticleSelected struct {
	Item domain.ContentItem
}

// ArticleLoaded carries a rendered article.
type ArticleLoaded struct {
	Slug     string
	Article  *domain.Article
	Rendered string
	Err      error
}

// ActiveHeadingChanged is sent when scrolling settles on a new section.
type ActiveHeadingChanged struct {
	ID string
}

// CopyExpired is sent when the "copied" indicator may have cleared.
type CopyExpired struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
