// Package input provides the listing search box.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
)

// CharLimit bounds the search query length.
const CharLimit = 128

// minWidth is the narrowest the text field gets.
const minWidth = 20

// Event reports what a key did to the search box.
type Event int

const (
	// Unchanged means the query is the same as before the key.
	Unchanged Event = iota
	// Edited means the query changed and should be applied.
	Edited
	// Left means the box gave up focus.
	Left
)

// SearchInput is the live search box of a listing. It starts blurred;
// the listing focuses it on "/".
type SearchInput struct {
	field  textinput.Model
	styles *styles.Styles
}

// NewSearchInput creates a search box with the given placeholder.
func NewSearchInput(s *styles.Styles, placeholder string) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = placeholder
	field.CharLimit = CharLimit
	field.Width = 40

	return &SearchInput{field: field, styles: s}
}

// HandleKey feeds a key to the focused box. Enter and esc leave the box
// and keep the query.
func (s *SearchInput) HandleKey(msg tea.KeyMsg) (tea.Cmd, Event) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		s.field.Blur()
		return nil, Left
	}

	before := s.field.Value()
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	if s.field.Value() != before {
		return cmd, Edited
	}
	return cmd, Unchanged
}

// View renders the box with a "/" marker that lights up while focused.
func (s *SearchInput) View() string {
	marker := s.styles.Muted
	if s.field.Focused() {
		marker = s.styles.Title
	}
	//nolint:misspell // lipgloss.Center is the library's spelling
	return lipgloss.JoinHorizontal(lipgloss.Center,
		marker.Render("/ "),
		s.styles.InputField.Render(s.field.View()),
	)
}

// Value returns the query.
func (s *SearchInput) Value() string { return s.field.Value() }

// Focus gives the box focus.
func (s *SearchInput) Focus() tea.Cmd { return s.field.Focus() }

// Focused reports whether the box has focus.
func (s *SearchInput) Focused() bool { return s.field.Focused() }

// SetWidth fits the box into width columns, leaving room for the
// marker and the border.
func (s *SearchInput) SetWidth(width int) {
	s.field.Width = max(width-8, minWidth)
}

// Clear empties and blurs the box.
func (s *SearchInput) Clear() {
	s.field.Reset()
	s.field.Blur()
}
