// Package web serves the vabank.dev site: listing and article pages, a JSON
// listing API and the SEO files. Listing pages are stateless; the URL
// carries the category, query and load-more count, which are replayed on
// every request.
package web

import (
	"errors"

	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// Errors returned when required ports are missing.
var (
	ErrMissingListingService = errors.New("web: listing service is required")
	ErrMissingContentService = errors.New("web: content service is required")
	ErrMissingRenderService  = errors.New("web: render service is required")
)

// Ports aggregates the driving ports used by the site.
type Ports struct {
	Listing driving.ListingService
	Content driving.ContentService
	Render  driving.RenderService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Listing == nil:
		return ErrMissingListingService
	case p.Content == nil:
		return ErrMissingContentService
	case p.Render == nil:
		return ErrMissingRenderService
	}
	return nil
}
