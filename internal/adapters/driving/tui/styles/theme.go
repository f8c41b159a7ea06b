// Package styles holds the lipgloss styles of the terminal UI. Colours
// follow the vabank.dev site and adapt to light and dark terminals.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette maps UI roles to colours.
type Palette struct {
	Accent  lipgloss.AdaptiveColor // site blue
	Brand   lipgloss.AdaptiveColor // gradient purple, used for featured items
	Text    lipgloss.AdaptiveColor
	Subtle  lipgloss.AdaptiveColor
	Surface lipgloss.AdaptiveColor
	Line    lipgloss.AdaptiveColor
	Good    lipgloss.AdaptiveColor
	Bad     lipgloss.AdaptiveColor
}

// SitePalette is the palette of the vabank.dev site.
func SitePalette() Palette {
	return Palette{
		Accent:  lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"},
		Brand:   lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#A855F7"},
		Text:    lipgloss.AdaptiveColor{Light: "#0A0A0A", Dark: "#F5F5F5"},
		Subtle:  lipgloss.AdaptiveColor{Light: "#525252", Dark: "#737373"},
		Surface: lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#171717"},
		Line:    lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#262626"},
		Good:    lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#22C55E"},
		Bad:     lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
	}
}

// Styles are the styles shared by the views.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style

	// InputField frames the listing search box.
	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Tab and ActiveTab render the category filter.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Badge marks featured items.
	Badge lipgloss.Style

	// Heading is the active section line of the article view.
	Heading lipgloss.Style
}

// New builds the styles for p.
func New(p Palette) *Styles {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	return &Styles{
		Palette: p,

		Title:    fg(p.Accent).Bold(true),
		Normal:   fg(p.Text),
		Muted:    fg(p.Subtle),
		Selected: fg(p.Text).Background(p.Accent).Bold(true),
		Error:    fg(p.Bad),
		Success:  fg(p.Good),
		Help:     fg(p.Subtle),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Line).
			Padding(0, 1),
		StatusBar: fg(p.Subtle).Background(p.Surface).Padding(0, 1),

		Tab:       fg(p.Subtle).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(p.Surface).Background(p.Accent).Bold(true).Padding(0, 1),

		Badge:   fg(p.Brand).Bold(true),
		Heading: fg(p.Brand).Bold(true),
	}
}

// DefaultStyles returns the styles for the site palette.
func DefaultStyles() *Styles {
	return New(SitePalette())
}
