// Package status renders the one-line bar at the bottom of each view.
package status

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/keymap"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

// State selects what the left side of the bar shows.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
	StateCopied  State = "copied"
)

// StateFor maps a load status to a bar state.
func StateFor(s domain.LoadStatus) State {
	switch s {
	case domain.StatusLoading:
		return StateLoading
	case domain.StatusError:
		return StateError
	default:
		return StateReady
	}
}

// Bar shows the view state on the left and key hints on the right.
type Bar struct {
	styles *styles.Styles
	help   help.Model
	hints  []key.Binding

	state        State
	message      string
	shown, total int
	width        int
}

// NewBar creates a bar showing the keymap's short help.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = s.Help
	h.Styles.ShortDesc = s.Muted
	h.Styles.ShortSeparator = s.Muted

	return &Bar{
		styles: s,
		help:   h,
		hints:  km.ShortHelp(),
		state:  StateReady,
		width:  80,
	}
}

// View renders the bar as a single line at its full width. The hints are
// truncated to the room the padded bar leaves beside the status.
func (s *Bar) View() string {
	inner := max(s.width-s.styles.StatusBar.GetHorizontalFrameSize(), 0)
	left := s.status()
	s.help.Width = max(inner-lipgloss.Width(left)-1, 0)
	right := s.help.ShortHelpView(s.hints)

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
	return s.styles.StatusBar.Width(s.width).Render(row)
}

// status renders the left side. A message overrides the counts.
func (s *Bar) status() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateCopied:
		return s.styles.Success.Render("Copied!")
	case StateError:
		text := "Error"
		if s.message != "" {
			text += ": " + s.message
		}
		return s.styles.Error.Render(text)
	}

	switch {
	case s.message != "":
		return s.styles.Normal.Render(s.message)
	case s.total > 0:
		return s.styles.Normal.Render(fmt.Sprintf("Showing %d of %d", s.shown, s.total))
	default:
		return s.styles.Muted.Render("Ready")
	}
}

func (s *Bar) SetState(state State) { s.state = state }
func (s *Bar) State() State         { return s.state }

func (s *Bar) SetMessage(message string) { s.message = message }
func (s *Bar) Message() string           { return s.message }

// SetCounts sets how many items are shown out of how many match.
func (s *Bar) SetCounts(shown, total int) { s.shown, s.total = shown, total }

// SetHints replaces the key hints.
func (s *Bar) SetHints(hints []key.Binding) { s.hints = hints }

func (s *Bar) SetWidth(width int) { s.width = width }

// Clear returns the bar to Ready with no message or counts.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.shown, s.total = 0, 0
}
