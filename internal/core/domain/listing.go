package domain

import "fmt"

// CategoryAll is the id of the synthetic category that matches everything.
const CategoryAll = "all"

// Labels for the synthetic "all" category.
const (
	AllArticlesLabel = "All Articles"
	AllProjectsLabel = "All Projects"
)

// DefaultPageSize is the initial number of revealed items in a three-column grid.
const DefaultPageSize = 6

// Category is a derived taxonomy entry.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// IsAll reports whether c is the synthetic "all" category.
func (c Category) IsAll() bool {
	return c.ID == CategoryAll
}

// ListingConfig holds the windowing constants of a listing.
type ListingConfig struct {
	// PageSize is the initial and reset value of the visible count.
	PageSize int `json:"pageSize"`

	// Step is how many items one "load more" reveals.
	Step int `json:"step"`

	// AllLabel is the label of the synthetic "all" category.
	AllLabel string `json:"allLabel"`
}

// DefaultListingConfig returns the listing constants for a content kind.
func DefaultListingConfig(kind ContentKind) ListingConfig {
	switch kind {
	case KindPost:
		return ListingConfig{PageSize: DefaultPageSize, Step: 3, AllLabel: AllArticlesLabel}
	case KindWork:
		return ListingConfig{PageSize: DefaultPageSize, Step: 6, AllLabel: AllProjectsLabel}
	case KindPractice:
		return ListingConfig{PageSize: DefaultPageSize, Step: 3, AllLabel: AllProjectsLabel}
	default:
		return ListingConfig{PageSize: DefaultPageSize, Step: DefaultPageSize, AllLabel: AllProjectsLabel}
	}
}

// Normalized fills zero values: page size falls back to DefaultPageSize
// and step to the page size.
func (c ListingConfig) Normalized() ListingConfig {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Step <= 0 {
		c.Step = c.PageSize
	}
	if c.AllLabel == "" {
		c.AllLabel = AllProjectsLabel
	}
	return c
}

// ListingState is the mutable state of one browsing session on one listing.
type ListingState struct {
	ActiveCategory string `json:"activeCategory"`
	SearchQuery    string `json:"searchQuery"`
	VisibleCount   int    `json:"visibleCount"`
}

// NewListingState returns the initial state for the given page size.
func NewListingState(pageSize int) ListingState {
	return ListingState{
		ActiveCategory: CategoryAll,
		VisibleCount:   pageSize,
	}
}

// ListingView is the read model exposed by a listing controller.
type ListingView[T any] struct {
	VisibleItems   []T        `json:"visibleItems"`
	HasMore        bool       `json:"hasMore"`
	ActiveCategory string     `json:"activeCategory"`
	SearchQuery    string     `json:"searchQuery"`
	TotalMatching  int        `json:"totalMatching"`
	IsEmpty        bool       `json:"isEmpty"`
	VisibleCount   int        `json:"visibleCount"`
	Categories     []Category `json:"categories"`

	// Featured is populated only for listings with a featured predicate,
	// and only while no category or query filter is active.
	Featured []T `json:"featured,omitempty"`
}

// ActionType names a listing transition.
type ActionType string

// Listing transitions.
const (
	ActionSetCategory ActionType = "set_category"
	ActionSetQuery    ActionType = "set_query"
	ActionLoadMore    ActionType = "load_more"
	ActionReset       ActionType = "reset"
)

// IsValid returns true if the action type is recognised.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionSetCategory, ActionSetQuery, ActionLoadMore, ActionReset:
		return true
	default:
		return false
	}
}

// ListingAction is a transition request with its argument.
type ListingAction struct {
	Type  ActionType `json:"type"`
	Value string     `json:"value,omitempty"`
}

// Validate checks the action type.
func (a ListingAction) Validate() error {
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
	}
	return nil
}

// ListingQuery describes a listing state reached from the initial state by
// SET_CATEGORY, SET_QUERY and LoadMore repeated LOAD_MORE transitions.
// Stateless adapters use it to rebuild a view from request parameters.
type ListingQuery struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
	LoadMore int    `json:"loadMore,omitempty"`
}

// LoadStatus tracks an asynchronous content load in interactive adapters.
type LoadStatus int

// Load statuses.
const (
	StatusLoading LoadStatus = iota
	StatusReady
	StatusError
)

// String returns the string representation.
func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
