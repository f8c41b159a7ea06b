// Package mcp provides an MCP (Model Context Protocol) server adapter for vabank.
// It lets AI assistants browse the blog, portfolio and tech practices through
// listing sessions and read rendered articles.
package mcp

import "errors"

// Errors returned when required ports are missing.
var (
	ErrMissingListingService = errors.New("mcp: listing service is required")
	ErrMissingContentService = errors.New("mcp: content service is required")
	ErrMissingRenderService  = errors.New("mcp: render service is required")
)
