// Package listing provides the filterable collection view for the TUI.
package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/input"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/list"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/status"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/tabs"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/keymap"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
)

// errNoListingService is reported when the view has no service to open with.
var errNoListingService = errors.New("listing service not available")

// View shows one listing session: category tabs, live search and a
// paginated item list.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	listing driving.ListingService
	ctx     context.Context

	kind      domain.ContentKind
	sessionID string
	status    domain.LoadStatus
	current   driving.ItemView
	err       error

	tabs   *tabs.Tabs
	search *input.SearchInput
	items  *list.ItemList
	bar    *status.Bar

	width  int
	height int
}

// NewView creates a listing view.
func NewView(s *styles.Styles, km *keymap.KeyMap, listing driving.ListingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ListingHelp())

	return &View{
		styles:  s,
		keymap:  km,
		listing: listing,
		ctx:     context.Background(),
		tabs:    tabs.New(s),
		search:  input.NewSearchInput(s, "Search..."),
		items:   list.NewItemList(s),
		bar:     bar,
		width:   80,
		height:  24,
	}
}

// WithContext sets the context used to open sessions.
func (v *View) WithContext(ctx context.Context) *View {
	if ctx != nil {
		v.ctx = ctx
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open starts loading a listing of kind. A previous session is closed first.
func (v *View) Open(kind domain.ContentKind) tea.Cmd {
	v.Close()
	v.kind = kind
	v.status = domain.StatusLoading
	v.current = driving.ItemView{}
	v.err = nil
	v.search.Clear()
	v.items.SetItems(nil, nil)
	v.items.ResetSelection()
	v.bar.Clear()
	v.bar.SetState(status.StateLoading)

	listing := v.listing
	ctx := v.ctx
	return func() tea.Msg {
		if listing == nil {
			return messages.ListingOpened{Kind: kind, Err: errNoListingService}
		}
		id, view, err := listing.Open(ctx, kind)
		return messages.ListingOpened{Kind: kind, SessionID: id, View: view, Err: err}
	}
}

// Close releases the current session, if any.
func (v *View) Close() {
	if v.sessionID == "" || v.listing == nil {
		return
	}
	_ = v.listing.Close(v.sessionID)
	v.sessionID = ""
}

// Update handles messages for the listing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ListingOpened:
		if msg.Kind != v.kind {
			// A late reply for a listing the user already left.
			if msg.SessionID != "" && v.listing != nil {
				_ = v.listing.Close(msg.SessionID)
			}
			return v, nil
		}
		if msg.Err != nil {
			v.fail(msg.Err)
			return v, nil
		}
		v.sessionID = msg.SessionID
		v.show(msg.View)
		return v, nil

	case tea.KeyMsg:
		if v.search.Focused() {
			return v.handleSearchKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleSearchKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	cmd, ev := v.search.HandleKey(msg)
	if ev == input.Edited {
		v.apply(domain.ListingAction{Type: domain.ActionSetQuery, Value: v.search.Value()})
	}
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		v.Close()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case key.Matches(msg, v.keymap.Up):
		v.items.MoveUp()

	case key.Matches(msg, v.keymap.Down):
		v.items.MoveDown()

	case key.Matches(msg, v.keymap.Search):
		if v.status == domain.StatusReady {
			return v, v.search.Focus()
		}

	case key.Matches(msg, v.keymap.NextCategory):
		v.setCategory(v.tabs.Next())

	case key.Matches(msg, v.keymap.PrevCategory):
		v.setCategory(v.tabs.Prev())

	case key.Matches(msg, v.keymap.LoadMore):
		if v.current.HasMore {
			v.apply(domain.ListingAction{Type: domain.ActionLoadMore})
		}

	case key.Matches(msg, v.keymap.Reset):
		v.search.Clear()
		v.apply(domain.ListingAction{Type: domain.ActionReset})

	case key.Matches(msg, v.keymap.Select):
		if item := v.items.SelectedItem(); item != nil {
			selected := *item
			return v, func() tea.Msg {
				return messages.ArticleSelected{Item: selected}
			}
		}
	}

	return v, nil
}

func (v *View) setCategory(id string) {
	if id == "" || id == v.current.ActiveCategory {
		return
	}
	v.apply(domain.ListingAction{Type: domain.ActionSetCategory, Value: id})
}

// apply runs a transition synchronously so fast typing cannot reorder
// query updates.
func (v *View) apply(action domain.ListingAction) {
	if v.sessionID == "" || v.listing == nil {
		return
	}
	view, err := v.listing.Apply(v.sessionID, action)
	if err != nil {
		v.fail(err)
		return
	}
	v.show(view)
}

func (v *View) show(view driving.ItemView) {
	prevCount := v.current.VisibleCount
	loadMore := view.VisibleCount > prevCount &&
		view.ActiveCategory == v.current.ActiveCategory &&
		view.SearchQuery == v.current.SearchQuery

	v.current = view
	v.status = domain.StatusReady
	v.err = nil

	v.items.SetItems(view.Featured, view.VisibleItems)
	if !loadMore {
		v.items.ResetSelection()
	}
	v.tabs.Set(view.Categories, view.ActiveCategory)
	v.bar.Clear()
	v.bar.SetState(status.StateReady)
	v.bar.SetCounts(view.VisibleCount, view.TotalMatching)
}

func (v *View) fail(err error) {
	v.status = domain.StatusError
	v.err = err
	v.bar.SetState(status.StateError)
	v.bar.SetMessage(err.Error())
}

// View renders the listing.
func (v *View) View() string {
	var b strings.Builder

	title := "Listing"
	if v.kind != "" {
		title = v.kind.Description()
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch v.status {
	case domain.StatusLoading:
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Loading %s...", v.kind.Plural())))
		b.WriteString("\n\n")
	case domain.StatusError:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Could not load %s: %v", v.kind.Plural(), v.err)))
		b.WriteString("\n\n")
	default:
		if len(v.current.Categories) > 0 {
			b.WriteString(v.tabs.View())
			b.WriteString("\n\n")
		}
		b.WriteString(v.search.View())
		b.WriteString("\n\n")
		if v.current.IsEmpty {
			b.WriteString(v.styles.Muted.Render(v.emptyMessage()))
			b.WriteString("\n\n")
		} else {
			b.WriteString(v.items.View())
			b.WriteString("\n")
			if v.current.HasMore {
				b.WriteString(v.styles.Help.Render("[m] Load more"))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(v.bar.View())
	return b.String()
}

func (v *View) emptyMessage() string {
	if v.current.SearchQuery != "" {
		return fmt.Sprintf("No %s match %q. Press r to reset filters.", v.kind.Plural(), v.current.SearchQuery)
	}
	if v.current.ActiveCategory != domain.CategoryAll {
		return fmt.Sprintf("No %s in this category. Press r to reset filters.", v.kind.Plural())
	}
	return fmt.Sprintf("No %s yet.", v.kind.Plural())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height

	// title, tabs, search, load-more hint and status bar
	reserved := 10
	v.items.SetDimensions(width, max(height-reserved, 3))
	v.tabs.SetWidth(width)
	v.search.SetWidth(width)
	v.bar.SetWidth(width)
}

// Kind returns the collection being listed.
func (v *View) Kind() domain.ContentKind {
	return v.kind
}

// SessionID returns the open session, or "" when none is open.
func (v *View) SessionID() string {
	return v.sessionID
}

// Status returns the load status.
func (v *View) Status() domain.LoadStatus {
	return v.status
}

// Current returns the latest listing view.
func (v *View) Current() driving.ItemView {
	return v.current
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Searching reports whether the search input has focus.
func (v *View) Searching() bool {
	return v.search.Focused()
}
