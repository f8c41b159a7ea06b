package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "****"},
		{name: "short", input: "sk123", expected: "****"},
		{name: "exactly 8 chars", input: "12345678", expected: "****"},
		{name: "read token", input: "skReadToken0123456789abcd", expected: "skRe...abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskAPIKey(tt.input))
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"empty returns default", "", 4, 2, 2},
		{"valid choice", "3", 4, 1, 3},
		{"below range", "0", 4, 1, 1},
		{"above range", "5", 4, 1, 1},
		{"not a number", "abc", 4, 2, 2},
		{"maximum is valid", "4", 4, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestSettingsShow_Defaults(t *testing.T) {
	out := requireRun(t, demoServices(t), "settings", "show")

	assert.Contains(t, out, "Project: (not set)")
	assert.Contains(t, out, "Dataset: production")
	assert.Contains(t, out, "Base URL: https://vabank.dev")
	assert.Contains(t, out, "Blog: 6 per page, +3 per load")
	assert.Contains(t, out, "Our Work: 6 per page, +6 per load")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsShow_WarnsOnIncompleteSource(t *testing.T) {
	s := demoServices(t)
	requireRun(t, s, "settings", "set", "content.source", "sanity")

	out := requireRun(t, s, "settings", "show")

	assert.Contains(t, out, "Warning:")
	assert.Contains(t, out, "sanity.project_id")
}

func TestSettingsSet(t *testing.T) {
	s := demoServices(t)

	out := requireRun(t, s, "settings", "set", "listing.posts.page_size", "9")
	assert.Contains(t, out, "Set listing.posts.page_size")

	requireRun(t, s, "settings", "set", "sanity.project_id", "abc123")
	requireRun(t, s, "settings", "set", "sanity.token", "skReadToken0123456789abcd")

	settings, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 9, settings.Listing(domain.KindPost).PageSize)

	out = requireRun(t, s, "settings")
	assert.Contains(t, out, "Project: abc123")
	assert.Contains(t, out, "Token: skRe...abcd")
	assert.NotContains(t, out, "skReadToken0123456789abcd")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsSet_Invalid(t *testing.T) {
	s := demoServices(t)

	_, err := run(t, s, "settings", "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, s, "settings", "set", "content.source", "ftp")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = run(t, s, "settings", "set", "listing.works.step", "-2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "positive integer")
}

func TestSettingsSet_DashValueIsNotAFlag(t *testing.T) {
	s := demoServices(t)

	requireRun(t, s, "settings", "set", "site.description", "-- engineering notes")

	got, err := s.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "-- engineering notes", got.Site.Description)
}

func TestSettingsKeys(t *testing.T) {
	out := requireRun(t, nil, "settings", "keys")

	assert.Contains(t, out, "content.source\n")
	assert.Contains(t, out, "listing.practices.step\n")
}
