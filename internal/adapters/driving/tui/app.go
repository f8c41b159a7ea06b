package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/keymap"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/views/article"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/views/listing"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/views/menu"
	"github.com/vabank-dev/vabank/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView    *menu.View
	listingView *listing.View
	articleView *article.View

	// selectedKind is the collection currently being browsed.
	selectedKind domain.ContentKind

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		menuView:    menu.NewView(s, km),
		listingView: listing.NewView(s, km, ports.Listing),
		articleView: article.NewView(s, km, ports.Content, ports.Render, ports.Copy),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.listingView.WithContext(ctx)
	a.articleView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("vabank"),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.shutdown()
			return a, tea.Quit
		}
		return a, a.updateActive(msg)

	case messages.ViewChanged:
		if a.currentView == messages.ViewArticle && msg.View != messages.ViewArticle {
			a.articleView.Close()
		}
		a.currentView = msg.View
		return a, nil

	case messages.ListingSelected:
		a.selectedKind = msg.Kind
		a.currentView = messages.ViewListing
		return a, a.listingView.Open(msg.Kind)

	case messages.ListingOpened:
		a.listingView, cmd = a.listingView.Update(msg)
		if msg.Err != nil && msg.Kind == a.selectedKind {
			a.err = msg.Err
		}
		return a, cmd

	case messages.ArticleSelected:
		a.currentView = messages.ViewArticle
		return a, a.articleView.Load(msg.Item)

	case messages.ArticleLoaded, messages.ActiveHeadingChanged, messages.CopyExpired:
		a.articleView, cmd = a.articleView.Update(msg)
		if loaded, ok := msg.(messages.ArticleLoaded); ok && loaded.Err != nil {
			a.err = loaded.Err
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		a.shutdown()
		return a, tea.Quit
	}

	return a, a.updateActive(msg)
}

func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewListing:
		a.listingView, cmd = a.listingView.Update(msg)
	case messages.ViewArticle:
		a.articleView, cmd = a.articleView.Update(msg)
	case messages.ViewHelp:
		if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, a.keymap.Back) {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// shutdown releases the open listing session and pending timers.
func (a *App) shutdown() {
	a.listingView.Close()
	a.articleView.Close()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewListing:
		return a.listingView.View()
	case messages.ViewArticle:
		return a.articleView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedKind returns the collection being browsed.
func (a *App) SelectedKind() domain.ContentKind {
	return a.selectedKind
}

// Listing returns the listing view.
func (a *App) Listing() *listing.View {
	return a.listingView
}

// Article returns the article view.
func (a *App) Article() *article.View {
	return a.articleView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.menuView.SetDimensions(width, height)
	a.listingView.SetDimensions(width, height)
	a.articleView.SetDimensions(width, height)
}
