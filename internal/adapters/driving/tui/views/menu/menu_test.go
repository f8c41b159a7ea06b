package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestEntries(t *testing.T) {
	entries := Entries()

	require.Len(t, entries, 5)
	assert.Equal(t, "Blog", entries[0].Label)
	assert.Equal(t, messages.ListingSelected{Kind: domain.KindPost}, entries[0].Msg())
	assert.Equal(t, messages.ListingSelected{Kind: domain.KindPractice}, entries[2].Msg())
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, entries[3].Msg())
	assert.IsType(t, tea.QuitMsg{}, entries[4].Msg())
}

func TestView_NotReadyUntilSized(t *testing.T) {
	view := NewView(nil, nil)
	assert.Equal(t, "Initialising...", view.View())

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := view.View()
	assert.Contains(t, out, "Vabank.dev")
	assert.Contains(t, out, "Our Work")
	assert.Contains(t, out, "Articles on AI")
	assert.Contains(t, out, "quit")
}

func TestView_CursorBounds(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Cursor())

	for i := 0; i < 10; i++ {
		view.Update(keyRune('j'))
	}
	assert.Equal(t, 4, view.Cursor())

	view.Update(keyRune('k'))
	assert.Equal(t, 3, view.Cursor())
}

func TestView_EnterOpensEntry(t *testing.T) {
	view := NewView(nil, nil)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ListingSelected{Kind: domain.KindWork}, cmd())
}

func TestView_DigitOpensEntry(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(keyRune('3'))
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ListingSelected{Kind: domain.KindPractice}, cmd())
	assert.Equal(t, 2, view.Cursor())

	_, cmd = view.Update(keyRune('9'))
	assert.Nil(t, cmd)
}

func TestView_Quit(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = view.Update(keyRune('5'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
