package mcp

import (
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// Ports are the services the MCP tools and resources call.
type Ports struct {
	Listing driving.ListingService
	Content driving.ContentService
	Render  driving.RenderService
}

// Validate reports the first missing service.
func (p *Ports) Validate() error {
	required := []struct {
		set bool
		err error
	}{
		{p.Listing != nil, ErrMissingListingService},
		{p.Content != nil, ErrMissingContentService},
		{p.Render != nil, ErrMissingRenderService},
	}
	for _, r := range required {
		if !r.set {
			return r.err
		}
	}
	return nil
}
