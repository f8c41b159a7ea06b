// Package tabs renders the category filter of a listing.
package tabs

import (
	"strings"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

// Tabs is a horizontal row of categories with one active.
type Tabs struct {
	styles     *styles.Styles
	categories []domain.Category
	active     string
	width      int
}

// New creates an empty tab row.
func New(s *styles.Styles) *Tabs {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Tabs{styles: s, active: domain.CategoryAll, width: 80}
}

// Set replaces the categories and the active id.
func (t *Tabs) Set(categories []domain.Category, active string) {
	t.categories = categories
	t.active = active
}

// Active returns the active category id.
func (t *Tabs) Active() string {
	return t.active
}

// Next returns the id after the active one, wrapping around.
func (t *Tabs) Next() string {
	return t.offset(1)
}

// Prev returns the id before the active one, wrapping around.
func (t *Tabs) Prev() string {
	return t.offset(-1)
}

func (t *Tabs) offset(delta int) string {
	n := len(t.categories)
	if n == 0 {
		return domain.CategoryAll
	}
	i := t.index()
	if i < 0 {
		return t.categories[0].ID
	}
	return t.categories[((i+delta)%n+n)%n].ID
}

func (t *Tabs) index() int {
	for i, c := range t.categories {
		if c.ID == t.active {
			return i
		}
	}
	return -1
}

// View renders the tabs, wrapping onto further lines when they overflow.
func (t *Tabs) View() string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, c := range t.categories {
		label := c.Label
		if !c.IsAll() {
			label = services.TitleCase(label)
		}
		style := t.styles.Tab
		if c.ID == t.active {
			style = t.styles.ActiveTab
		}
		rendered := style.Render(label)
		w := len([]rune(label)) + 2
		if lineWidth > 0 && lineWidth+w > t.width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(rendered)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// SetWidth sets the available width.
func (t *Tabs) SetWidth(width int) {
	t.width = width
}
