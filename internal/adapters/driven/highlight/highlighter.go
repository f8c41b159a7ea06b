// Package highlight renders code blocks with chroma.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/vabank-dev/vabank/internal/core/ports/driven"
)

// Ensure Highlighter implements the interface.
var _ driven.Highlighter = (*Highlighter)(nil)

// DefaultStyle matches the site's dark code theme.
const DefaultStyle = "onedark"

// Format selects the output encoding.
type Format string

const (
	// FormatHTML emits a <pre> block with inline styles.
	FormatHTML Format = "html"
	// FormatTerminal emits 256-colour ANSI escapes.
	FormatTerminal Format = "terminal"
)

// Highlighter formats source code in one style and format.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// New creates a highlighter. Unknown style names fall back to DefaultStyle.
func New(styleName string, format Format) *Highlighter {
	style := styles.Get(styleName)
	if style == styles.Fallback {
		style = styles.Get(DefaultStyle)
	}

	var f chroma.Formatter
	switch format {
	case FormatTerminal:
		f = formatters.Get("terminal256")
	default:
		f = html.New(html.WithClasses(false), html.TabWidth(2))
	}

	return &Highlighter{style: style, formatter: f}
}

// Highlight formats source. Unknown languages are formatted as plain text.
func (h *Highlighter) Highlight(language, source string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return sb.String(), nil
}

// StyleName returns the resolved style name.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}
