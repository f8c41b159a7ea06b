// Package clipboard writes to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// writeAll is replaced in tests.
var writeAll = clipboard.WriteAll

// System is the OS clipboard.
type System struct{}

// New returns the system clipboard.
func New() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found. It is false on
// headless Linux without xclip, xsel or wl-copy.
func Available() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents.
func (System) WriteAll(text string) error {
	if err := writeAll(text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, err)
	}
	return nil
}
