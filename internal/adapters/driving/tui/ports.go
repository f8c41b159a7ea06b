// Package tui is the interactive terminal browser for the blog, our work
// and tech practices.
package tui

import (
	"errors"

	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

var (
	ErrMissingListingService = errors.New("tui: listing service is required")
	ErrMissingContentService = errors.New("tui: content service is required")
	ErrMissingRenderService  = errors.New("tui: render service is required")
)

// Ports are the services the views call. Copy is optional; without it
// copy requests are logged and dropped.
type Ports struct {
	Listing driving.ListingService
	Content driving.ContentService
	Render  driving.RenderService
	Copy    driving.CopyService
}

// Validate reports the first missing required service.
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
