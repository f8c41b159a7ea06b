// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

// linesPerItem is the height of one rendered entry including its gap.
const linesPerItem = 3

type entry struct {
	item     domain.ContentItem
	featured bool
}

// ItemList displays listing items, featured ones first, in a navigable list.
type ItemList struct {
	entries  []entry
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewItemList creates a new item list component.
func NewItemList(s *styles.Styles) *ItemList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ItemList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// SetItems replaces the entries. The selection is kept when still in range.
func (l *ItemList) SetItems(featured, items []domain.ContentItem) {
	l.entries = l.entries[:0]
	for _, it := range featured {
		l.entries = append(l.entries, entry{item: it, featured: true})
	}
	for _, it := range items {
		l.entries = append(l.entries, entry{item: it})
	}
	if l.selected >= len(l.entries) {
		l.selected = max(len(l.entries)-1, 0)
	}
}

// View renders the visible window of the list around the selection.
func (l *ItemList) View() string {
	if len(l.entries) == 0 {
		return ""
	}

	visible := max(l.height/linesPerItem, 1)
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := min(start+visible, len(l.entries))

	lines := make([]string, 0, (end-start)*linesPerItem)
	for i := start; i < end; i++ {
		lines = append(lines, l.renderEntry(i, &l.entries[i]))
	}
	return strings.Join(lines, "\n")
}

func (l *ItemList) renderEntry(index int, e *entry) string {
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := ansi.Truncate(e.item.Title, max(l.width-12, 10), "...")
	if e.featured {
		title = l.styles.Badge.Render("★ ") + title
	}

	var titleLine string
	if index == l.selected {
		titleLine = l.styles.Selected.Render(indicator + title)
	} else {
		titleLine = l.styles.Normal.Render(indicator + title)
	}

	meta := l.styles.Muted.Render("    " + Meta(&e.item))
	desc := e.item.Description
	if desc == "" {
		desc = services.Excerpt(e.item.Body, services.DefaultExcerptLength)
	}
	desc = ansi.Truncate(desc, max(l.width-6, 20), "...")

	return titleLine + "\n" + meta + "\n" + l.styles.Muted.Render("    "+desc)
}

// Meta is the date and category line shown under an item title.
func Meta(item *domain.ContentItem) string {
	var parts []string
	if d := domain.DisplayDate(item.SortTime()); d != "" {
		parts = append(parts, d)
	}
	if c := item.PrimaryCategory(); c != nil {
		parts = append(parts, services.TitleCase(c.Label))
	}
	if item.Kind == domain.KindPost && item.ReadingTime > 0 {
		parts = append(parts, fmt.Sprintf("%d min read", item.ReadingTime))
	}
	if item.Progress > 0 {
		parts = append(parts, fmt.Sprintf("%d%% complete", item.Progress))
	}
	return strings.Join(parts, " · ")
}

// Selected returns the index of the selected entry.
func (l *ItemList) Selected() int {
	return l.selected
}

// SelectedItem returns the selected item, or nil if the list is empty.
func (l *ItemList) SelectedItem() *domain.ContentItem {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return nil
	}
	return &l.entries[l.selected].item
}

// MoveUp moves selection up.
func (l *ItemList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ItemList) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
}

// ResetSelection moves the selection to the top.
func (l *ItemList) ResetSelection() {
	l.selected = 0
}

// SetDimensions sets the component dimensions.
func (l *ItemList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of entries.
func (l *ItemList) Count() int {
	return len(l.entries)
}
