// Package menu is the start screen: one entry per collection, then help
// and quit.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/status"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/keymap"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

const tagline = "AI-powered web development"

// Entry is one line of the menu.
type Entry struct {
	Label string
	Hint  string

	// msg is sent when the entry is opened.
	msg tea.Msg
}

// Msg returns the message the entry sends when opened.
func (e Entry) Msg() tea.Msg { return e.msg }

// Entries lists the collections followed by help and quit.
func Entries() []Entry {
	entries := make([]Entry, 0, len(domain.AllContentKinds())+2)
	for _, k := range domain.AllContentKinds() {
		entries = append(entries, Entry{
			Label: k.Description(),
			Hint:  hint(k),
			msg:   messages.ListingSelected{Kind: k},
		})
	}
	return append(entries,
		Entry{Label: "Help", Hint: "Key bindings", msg: messages.ViewChanged{View: messages.ViewHelp}},
		Entry{Label: "Quit", msg: tea.QuitMsg{}},
	)
}

func hint(k domain.ContentKind) string {
	switch k {
	case domain.KindPost:
		return "Articles on AI, web development and content platforms"
	case domain.KindWork:
		return "Client projects"
	case domain.KindPractice:
		return "Internal tools and experiments"
	default:
		return ""
	}
}

// View is the menu screen.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	bar     *status.Bar
	entries []Entry
	cursor  int

	width, height int
	ready         bool
}

// NewView creates the menu. Nil arguments use the defaults.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:  s,
		keymap:  km,
		bar:     status.NewBar(s, km),
		entries: Entries(),
		width:   80,
		height:  24,
	}
}

// Init does nothing.
func (v *View) Init() tea.Cmd { return nil }

// Update moves the cursor and opens entries. Digits open the matching
// entry directly.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up):
			v.cursor = max(v.cursor-1, 0)
		case key.Matches(msg, v.keymap.Down):
			v.cursor = min(v.cursor+1, len(v.entries)-1)
		case key.Matches(msg, v.keymap.Select):
			return v, v.open(v.cursor)
		case key.Matches(msg, v.keymap.Quit):
			return v, tea.Quit
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if n := int(msg.Runes[0] - '1'); n >= 0 && n < len(v.entries) {
				v.cursor = n
				return v, v.open(n)
			}
		}
	}
	return v, nil
}

func (v *View) open(i int) tea.Cmd {
	m := v.entries[i].msg
	return func() tea.Msg { return m }
}

// View renders the menu with the status bar pinned to the bottom.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Vabank.dev"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(tagline))
	b.WriteString("\n\n")

	for i, e := range v.entries {
		label := v.styles.Normal.Render(e.Label)
		prefix := "  "
		if i == v.cursor {
			prefix = v.styles.Badge.Render("▸ ")
			label = v.styles.Heading.Render(e.Label)
		}
		b.WriteString(prefix)
		b.WriteString(v.styles.Muted.Render(string(rune('1'+i)) + " "))
		b.WriteString(label)
		if i == v.cursor && e.Hint != "" {
			b.WriteString("  " + v.styles.Muted.Render(e.Hint))
		}
		b.WriteString("\n")
	}

	body := b.String()
	gap := max(v.height-lipgloss.Height(body)-1, 1)
	return body + strings.Repeat("\n", gap) + v.bar.View()
}

// SetDimensions sizes the menu and marks it ready.
func (v *View) SetDimensions(width, height int) {
	v.width, v.height = width, height
	v.bar.SetWidth(width)
	v.ready = true
}

// Cursor returns the highlighted entry index.
func (v *View) Cursor() int { return v.cursor }

// Entries returns the menu entries.
func (v *View) Entries() []Entry { return v.entries }
