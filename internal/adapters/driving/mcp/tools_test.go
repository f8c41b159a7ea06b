package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

func TestServer_handleOpenListing(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("opens a session on posts", func(t *testing.T) {
		_, out, err := server.handleOpenListing(ctx, nil, OpenListingInput{Kind: "blog"})
		require.NoError(t, err)

		assert.NotEmpty(t, out.SessionID)
		assert.Equal(t, "posts", out.Kind)
		assert.Len(t, out.Items, 4)
		assert.False(t, out.HasMore)
		assert.Equal(t, domain.CategoryAll, out.ActiveCategory)
		require.NotEmpty(t, out.Categories)
		assert.Equal(t, domain.AllArticlesLabel, out.Categories[0].Label)
		require.Len(t, out.Featured, 1)
		assert.Equal(t, "shipping-ai-agents", out.Featured[0].Slug)
		assert.True(t, server.sessions.has(out.SessionID))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, _, err := server.handleOpenListing(ctx, nil, OpenListingInput{Kind: "recipes"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
	})
}

func TestServer_handleListingAction(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, opened, err := server.handleOpenListing(ctx, nil, OpenListingInput{Kind: "posts"})
	require.NoError(t, err)

	t.Run("set category filters and hides featured", func(t *testing.T) {
		_, out, err := server.handleListingAction(ctx, nil, ListingActionInput{
			SessionID: opened.SessionID,
			Action:    string(domain.ActionSetCategory),
			Value:     "AI",
		})
		require.NoError(t, err)
		assert.Equal(t, "AI", out.ActiveCategory)
		assert.Equal(t, 2, out.TotalMatching)
		assert.Empty(t, out.Featured)
		assert.Equal(t, "posts", out.Kind)
	})

	t.Run("search with no match is empty", func(t *testing.T) {
		_, out, err := server.handleListingAction(ctx, nil, ListingActionInput{
			SessionID: opened.SessionID,
			Action:    string(domain.ActionSetQuery),
			Value:     "kubernetes",
		})
		require.NoError(t, err)
		assert.True(t, out.IsEmpty)
		assert.NotNil(t, out.Items)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, _, err := server.handleListingAction(ctx, nil, ListingActionInput{
			SessionID: opened.SessionID,
			Action:    "shuffle",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownAction)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := server.handleListingAction(ctx, nil, ListingActionInput{
			SessionID: "nope",
			Action:    string(domain.ActionReset),
		})
		require.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Contains(t, err.Error(), "open_listing")
	})
}

func TestServer_handleCloseListing(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, opened, err := server.handleOpenListing(ctx, nil, OpenListingInput{Kind: "works"})
	require.NoError(t, err)

	_, out, err := server.handleCloseListing(ctx, nil, CloseListingInput{SessionID: opened.SessionID})
	require.NoError(t, err)
	assert.True(t, out.Closed)
	assert.False(t, server.sessions.has(opened.SessionID))

	_, _, err = server.handleCloseListing(ctx, nil, CloseListingInput{SessionID: opened.SessionID})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestServer_handleBrowse(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, out, err := server.handleBrowse(ctx, nil, BrowseInput{Kind: "works", Query: "PORTAL"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "partner-portal", out.Items[0].Slug)
	assert.Equal(t, "/our-work/partner-portal", out.Items[0].Path)
	assert.Empty(t, out.SessionID)

	listing := &mockListingService{err: errors.New("boom")}
	failing, err := NewServer(&Ports{
		Listing: listing,
		Content: &mockContentService{},
		Render:  services.NewRenderer(nil, nil, false),
	})
	require.NoError(t, err)
	_, _, err = failing.handleBrowse(ctx, nil, BrowseInput{Kind: "posts"})
	assert.EqualError(t, err, "boom")
}

func TestServer_handleGetArticle(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	t.Run("post", func(t *testing.T) {
		_, out, err := server.handleGetArticle(ctx, nil, GetArticleInput{Kind: "posts", Slug: "shipping-ai-agents"})
		require.NoError(t, err)
		assert.Equal(t, "/blog/shipping-ai-agents", out.Path)
		assert.Contains(t, out.Markdown, "# Shipping AI agents to production")
		assert.Positive(t, out.ReadingTime)
	})

	t.Run("practice through the works path", func(t *testing.T) {
		_, out, err := server.handleGetArticle(ctx, nil, GetArticleInput{Kind: "works", Slug: "llm-evals-kit"})
		require.NoError(t, err)
		assert.Equal(t, "LLM evals kit", out.Title)
	})

	t.Run("missing slug", func(t *testing.T) {
		_, _, err := server.handleGetArticle(ctx, nil, GetArticleInput{Kind: "posts", Slug: "nope"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
