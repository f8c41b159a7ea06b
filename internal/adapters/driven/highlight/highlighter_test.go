package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight_HTML(t *testing.T) {
	h := New(DefaultStyle, FormatHTML)

	out, err := h.Highlight("go", "package main")

	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "package")
	assert.Contains(t, out, "style=")
}

func TestHighlight_Terminal(t *testing.T) {
	h := New(DefaultStyle, FormatTerminal)

	out, err := h.Highlight("javascript", "const x = 1;")

	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "<pre")
}

func TestHighlight_UnknownLanguage(t *testing.T) {
	h := New(DefaultStyle, FormatHTML)

	out, err := h.Highlight("no-such-language", "a < b")

	require.NoError(t, err)
	assert.Contains(t, out, "a &lt; b")
}

func TestNew_UnknownStyleFallsBack(t *testing.T) {
	assert.Equal(t, DefaultStyle, New("no-such-style", FormatHTML).StyleName())
	assert.Equal(t, "monokai", New("monokai", FormatHTML).StyleName())
}
