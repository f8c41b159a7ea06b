package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vabank-dev/vabank/internal/adapters/driving/present"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

// uriScheme is the custom URI scheme for vabank resources.
const uriScheme = "vabank://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "The content collections with their item counts",
		MIMEType:    "application/json",
	}, s.handleCollectionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "taxonomy/{kind}",
		Name:        "taxonomy",
		Description: "Categories of a collection, starting with the synthetic all category",
		MIMEType:    "application/json",
	}, s.handleTaxonomyResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "articles/{kind}/{slug}",
		Name:        "article",
		Description: "A rendered article as markdown",
		MIMEType:    "text/markdown",
	}, s.handleArticleResource)
}

func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type collectionInfo struct {
		Kind        string `json:"kind"`
		Name        string `json:"name"`
		Count       int    `json:"count"`
		TaxonomyURI string `json:"taxonomy_uri"`
	}

	kinds := domain.AllContentKinds()
	infos := make([]collectionInfo, len(kinds))
	for i, kind := range kinds {
		items, err := s.ports.Content.List(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", kind.Plural(), err)
		}
		infos[i] = collectionInfo{
			Kind:        kind.Plural(),
			Name:        kind.Description(),
			Count:       len(items),
			TaxonomyURI: uriScheme + "taxonomy/" + kind.Plural(),
		}
	}

	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleTaxonomyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	kind, err := domain.ParseContentKind(extractKind(req.Params.URI))
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	view, err := s.ports.Listing.Evaluate(ctx, kind, domain.ListingQuery{})
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", kind.Plural(), err)
	}

	cats := make([]CategoryOutput, len(view.Categories))
	for i, c := range view.Categories {
		cats[i] = CategoryOutput{ID: c.ID, Label: c.Label}
	}
	return jsonResult(req.Params.URI, cats)
}

func (s *Server) handleArticleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	rawKind, slug := extractArticle(req.Params.URI)
	kind, err := domain.ParseContentKind(rawKind)
	if err != nil || slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	item, err := s.ports.Content.Get(ctx, kind, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %q: %w", kind, slug, err)
	}

	article, err := s.ports.Render.Article(*item)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     present.ArticleMarkdown(article),
		}},
	}, nil
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractKind extracts the kind from a URI like vabank://taxonomy/{kind}.
func extractKind(uri string) string {
	const prefix = uriScheme + "taxonomy/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

// extractArticle splits a URI like vabank://articles/{kind}/{slug}.
func extractArticle(uri string) (kind, slug string) {
	const prefix = uriScheme + "articles/"
	if !strings.HasPrefix(uri, prefix) {
		return "", ""
	}
	kind, slug, ok := strings.Cut(strings.TrimPrefix(uri, prefix), "/")
	if !ok {
		return "", ""
	}
	return kind, slug
}
