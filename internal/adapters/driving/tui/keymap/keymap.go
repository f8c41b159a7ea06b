// Package keymap defines the key bindings of the terminal UI.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding. Views match keys with key.Matches.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
	Back key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Listing filters.
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	LoadMore     key.Binding
	Reset        key.Binding

	// Article code blocks.
	NextBlock key.Binding
	Copy      key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// DefaultKeyMap returns vim-flavoured bindings with arrow-key fallbacks.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: bind("q", "quit", "q", "ctrl+c"),
		Help: bind("?", "help", "?"),
		Back: bind("esc", "back", "esc"),

		Up:     bind("↑/k", "up", "up", "k"),
		Down:   bind("↓/j", "down", "down", "j"),
		Select: bind("enter", "open", "enter"),

		Search:       bind("/", "search", "/"),
		NextCategory: bind("→/l", "next category", "right", "l"),
		PrevCategory: bind("←/h", "prev category", "left", "h"),
		LoadMore:     bind("m", "load more", "m"),
		Reset:        bind("r", "reset filters", "r"),

		NextBlock: bind("tab", "next code block", "tab"),
		Copy:      bind("c", "copy code", "c"),
	}
}

// ShortHelp is shown in the menu status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Help, k.Quit}
}

// ListingHelp is shown in the listing status bar.
func (k *KeyMap) ListingHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextCategory, k.LoadMore, k.Reset, k.Select, k.Back}
}

// ArticleHelp is shown in the article status bar.
func (k *KeyMap) ArticleHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBlock, k.Copy, k.Back}
}

// FullHelp groups every binding by screen for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Search, k.NextCategory, k.PrevCategory, k.LoadMore, k.Reset},
		{k.NextBlock, k.Copy},
		{k.Back, k.Help, k.Quit},
	}
}
