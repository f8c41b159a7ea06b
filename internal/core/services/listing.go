package services

import (
	"github.com/vabank-dev/vabank/internal/core/domain"
)

// Controller holds the state of one listing session.
// The filtered set is recomputed from state on every read; collections are
// small enough that no incremental bookkeeping is kept.
//
// A Controller is not safe for concurrent use.
type Controller[T any] struct {
	items      []T
	schema     Schema[T]
	matcher    Matcher[T]
	cfg        domain.ListingConfig
	categories []domain.Category
	state      domain.ListingState
}

// NewController creates a controller over items in their display order.
// The taxonomy is derived once here.
func NewController[T any](items []T, schema Schema[T], cfg domain.ListingConfig) *Controller[T] {
	cfg = cfg.Normalized()
	categories := DeriveTaxonomy(items, schema.Categories, cfg.AllLabel)
	return &Controller[T]{
		items:      items,
		schema:     schema,
		matcher:    NewMatcher(schema).WithTaxonomy(categories),
		cfg:        cfg,
		categories: categories,
		state:      domain.NewListingState(cfg.PageSize),
	}
}

// State returns a copy of the current state.
func (c *Controller[T]) State() domain.ListingState {
	return c.state
}

// Config returns the normalised listing configuration.
func (c *Controller[T]) Config() domain.ListingConfig {
	return c.cfg
}

// Categories returns the derived taxonomy.
func (c *Controller[T]) Categories() []domain.Category {
	return c.categories
}

// SetCategory selects a category and resets the window.
// Unknown ids are accepted and match nothing.
func (c *Controller[T]) SetCategory(id string) {
	if id == "" {
		id = domain.CategoryAll
	}
	c.state.ActiveCategory = id
	c.state.VisibleCount = c.cfg.PageSize
}

// SetQuery sets the free-text query and resets the window.
func (c *Controller[T]) SetQuery(query string) {
	c.state.SearchQuery = query
	c.state.VisibleCount = c.cfg.PageSize
}

// LoadMore reveals the next step of matching items. No-op when nothing remains.
func (c *Controller[T]) LoadMore() {
	filtered := c.filtered()
	if c.state.VisibleCount >= len(filtered) {
		return
	}
	c.state.VisibleCount = Advance(c.state.VisibleCount, c.cfg.Step, len(filtered))
}

// Reset restores the initial state.
func (c *Controller[T]) Reset() {
	c.state = domain.NewListingState(c.cfg.PageSize)
}

// Apply performs a transition described by an action.
func (c *Controller[T]) Apply(action domain.ListingAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	switch action.Type {
	case domain.ActionSetCategory:
		c.SetCategory(action.Value)
	case domain.ActionSetQuery:
		c.SetQuery(action.Value)
	case domain.ActionLoadMore:
		c.LoadMore()
	case domain.ActionReset:
		c.Reset()
	}
	return nil
}

// Replay applies a query's transitions starting from the initial state.
func (c *Controller[T]) Replay(q domain.ListingQuery) {
	c.Reset()
	if q.Category != "" {
		c.SetCategory(q.Category)
	}
	if q.Search != "" {
		c.SetQuery(q.Search)
	}
	for i := 0; i < q.LoadMore; i++ {
		before := c.state.VisibleCount
		c.LoadMore()
		if c.state.VisibleCount == before {
			break
		}
	}
}

// View returns the read model for the current state.
func (c *Controller[T]) View() domain.ListingView[T] {
	filtered := c.filtered()
	visible, hasMore := Reveal(filtered, c.state.VisibleCount)

	return domain.ListingView[T]{
		VisibleItems:   visible,
		HasMore:        hasMore,
		ActiveCategory: c.state.ActiveCategory,
		SearchQuery:    c.state.SearchQuery,
		TotalMatching:  len(filtered),
		IsEmpty:        len(filtered) == 0,
		VisibleCount:   c.state.VisibleCount,
		Categories:     c.categories,
		Featured:       c.featured(),
	}
}

func (c *Controller[T]) filtered() []T {
	return c.matcher.Filter(c.items, c.state.ActiveCategory, c.state.SearchQuery)
}

// featured lists featured items from the whole collection, only while
// no filter is active.
func (c *Controller[T]) featured() []T {
	if c.schema.Featured == nil {
		return nil
	}
	if c.state.ActiveCategory != domain.CategoryAll || c.state.SearchQuery != "" {
		return nil
	}
	var out []T
	for _, item := range c.items {
		if c.schema.Featured(item) {
			out = append(out, item)
		}
	}
	return out
}
