package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vabank-dev/vabank/internal/adapters/driving/present"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// OpenListingInput is the input schema for the open_listing tool.
type OpenListingInput struct {
	Kind string `json:"kind" jsonschema:"collection to browse: posts, works or practices"`
}

// ListingActionInput is the input schema for the listing_action tool.
type ListingActionInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_listing"`
	Action    string `json:"action" jsonschema:"one of set_category, set_query, load_more, reset"`
	Value     string `json:"value,omitempty" jsonschema:"category id for set_category, search text for set_query"`
}

// CloseListingInput is the input schema for the close_listing tool.
type CloseListingInput struct {
	SessionID string `json:"session_id" jsonschema:"session id returned by open_listing"`
}

// BrowseInput is the input schema for the stateless browse tool.
type BrowseInput struct {
	Kind     string `json:"kind" jsonschema:"collection to browse: posts, works or practices"`
	Category string `json:"category,omitempty" jsonschema:"category id (default all)"`
	Query    string `json:"query,omitempty" jsonschema:"case-insensitive search over title, description and tags"`
	LoadMore int    `json:"load_more,omitempty" jsonschema:"how many times to reveal the next page"`
}

// GetArticleInput is the input schema for the get_article tool.
type GetArticleInput struct {
	Kind string `json:"kind" jsonschema:"posts, works or practices"`
	Slug string `json:"slug" jsonschema:"the item slug"`
}

// ListingOutput is the output schema for listing tools.
type ListingOutput struct {
	SessionID      string           `json:"session_id,omitempty"`
	Kind           string           `json:"kind"`
	Items          []ItemOutput     `json:"items"`
	Featured       []ItemOutput     `json:"featured,omitempty"`
	HasMore        bool             `json:"has_more"`
	TotalMatching  int              `json:"total_matching"`
	IsEmpty        bool             `json:"is_empty"`
	ActiveCategory string           `json:"active_category"`
	SearchQuery    string           `json:"search_query"`
	Categories     []CategoryOutput `json:"categories"`
}

// ItemOutput is one item of a listing.
type ItemOutput struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Path        string   `json:"path"`
	Date        string   `json:"date,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CategoryOutput is one taxonomy entry.
type CategoryOutput struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CloseListingOutput is the output schema for the close_listing tool.
type CloseListingOutput struct {
	Closed bool `json:"closed"`
}

// ArticleOutput is the output schema for the get_article tool.
type ArticleOutput struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Excerpt     string   `json:"excerpt"`
	ReadingTime int      `json:"reading_time"`
	Contents    []string `json:"contents,omitempty"`
	Markdown    string   `json:"markdown"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open_listing",
		Description: "Open a browsing session on the blog, portfolio or tech practices",
	}, s.handleOpenListing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "listing_action",
		Description: "Filter by category, search, load more or reset an open listing",
	}, s.handleListingAction)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "close_listing",
		Description: "Close a listing session",
	}, s.handleCloseListing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse",
		Description: "Evaluate a listing in one call without keeping a session",
	}, s.handleBrowse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_article",
		Description: "Read a blog post, project or practice as markdown",
	}, s.handleGetArticle)
}

func (s *Server) handleOpenListing(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OpenListingInput,
) (*mcp.CallToolResult, ListingOutput, error) {
	kind, err := domain.ParseContentKind(input.Kind)
	if err != nil {
		return nil, ListingOutput{}, err
	}

	id, view, err := s.ports.Listing.Open(ctx, kind)
	if err != nil {
		return nil, ListingOutput{}, err
	}
	s.track(id)

	out := listingOutput(kind, view)
	out.SessionID = id
	return nil, out, nil
}

func (s *Server) handleListingAction(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListingActionInput,
) (*mcp.CallToolResult, ListingOutput, error) {
	action := domain.ListingAction{
		Type:  domain.ActionType(input.Action),
		Value: input.Value,
	}
	view, err := s.ports.Listing.Apply(input.SessionID, action)
	if err != nil {
		return nil, ListingOutput{}, sessionError(input.SessionID, err)
	}

	out := listingOutput("", view)
	out.SessionID = input.SessionID
	return nil, out, nil
}

func (s *Server) handleCloseListing(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CloseListingInput,
) (*mcp.CallToolResult, CloseListingOutput, error) {
	s.untrack(input.SessionID)
	if err := s.ports.Listing.Close(input.SessionID); err != nil {
		return nil, CloseListingOutput{}, sessionError(input.SessionID, err)
	}
	return nil, CloseListingOutput{Closed: true}, nil
}

func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, ListingOutput, error) {
	kind, err := domain.ParseContentKind(input.Kind)
	if err != nil {
		return nil, ListingOutput{}, err
	}

	view, err := s.ports.Listing.Evaluate(ctx, kind, domain.ListingQuery{
		Category: input.Category,
		Search:   input.Query,
		LoadMore: input.LoadMore,
	})
	if err != nil {
		return nil, ListingOutput{}, err
	}
	return nil, listingOutput(kind, view), nil
}

func (s *Server) handleGetArticle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetArticleInput,
) (*mcp.CallToolResult, ArticleOutput, error) {
	kind, err := domain.ParseContentKind(input.Kind)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	item, err := s.ports.Content.Get(ctx, kind, input.Slug)
	if errors.Is(err, domain.ErrNotFound) && kind == domain.KindWork {
		// /our-work/{slug} serves practices too.
		item, err = s.ports.Content.Get(ctx, domain.KindPractice, input.Slug)
	}
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	article, err := s.ports.Render.Article(*item)
	if err != nil {
		return nil, ArticleOutput{}, err
	}

	out := ArticleOutput{
		Slug:        item.Slug,
		Title:       item.Title,
		Path:        item.Path(),
		Excerpt:     article.Excerpt,
		ReadingTime: article.ReadingTime,
		Markdown:    present.ArticleMarkdown(article),
	}
	for _, e := range article.TOC {
		out.Contents = append(out.Contents, e.Text)
	}
	return nil, out, nil
}

func sessionError(id string, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("session %q is unknown or closed, call open_listing again: %w", id, err)
	}
	return err
}

func listingOutput(kind domain.ContentKind, view driving.ItemView) ListingOutput {
	out := ListingOutput{
		Kind:           kind.Plural(),
		Items:          itemOutputs(view.VisibleItems),
		Featured:       itemOutputs(view.Featured),
		HasMore:        view.HasMore,
		TotalMatching:  view.TotalMatching,
		IsEmpty:        view.IsEmpty,
		ActiveCategory: view.ActiveCategory,
		SearchQuery:    view.SearchQuery,
		Categories:     make([]CategoryOutput, len(view.Categories)),
	}
	if kind == "" && len(view.VisibleItems) > 0 {
		out.Kind = view.VisibleItems[0].Kind.Plural()
	}
	for i, c := range view.Categories {
		out.Categories[i] = CategoryOutput{ID: c.ID, Label: c.Label}
	}
	return out
}

func itemOutputs(items []domain.ContentItem) []ItemOutput {
	out := make([]ItemOutput, len(items))
	for i := range items {
		it := &items[i]
		o := ItemOutput{
			Slug:        it.Slug,
			Title:       it.Title,
			Description: it.Description,
			Path:        it.Path(),
			Date:        domain.DisplayDate(it.SortTime()),
			Tags:        it.AllTags(),
		}
		for _, c := range it.Categories {
			o.Categories = append(o.Categories, c.Label)
		}
		out[i] = o
	}
	return out
}
