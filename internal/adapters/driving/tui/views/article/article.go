// Package article provides the rendered article view for the TUI.
package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vabank-dev/vabank/internal/adapters/driving/present"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/components/status"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/keymap"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/messages"
	"github.com/vabank-dev/vabank/internal/adapters/driving/tui/styles"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/core/services"
)

// LineHeight converts terminal lines to the pixel offsets used for
// active-heading detection.
const LineHeight = 20

// ScrollSettle is how long scrolling must pause before the active
// heading is recomputed.
const ScrollSettle = 100 * time.Millisecond

var errNoRenderService = errors.New("render service not available")

// View shows one article in a scrollable viewport.
type View struct {
	styles *styles.Styles
	keymap  *keymap.KeyMap
	content driving.ContentService
	render  driving.RenderService
	copy    driving.CopyService
	ctx     context.Context

	item     *domain.ContentItem
	article  *domain.Article
	rendered string
	loading  bool
	err      error

	viewport  viewport.Model
	positions []domain.HeadingPosition
	blocks    []*domain.CodeInstruction
	block     int

	active    string
	debouncer *services.Debouncer
	headings  chan string
	waiting   bool

	bar    *status.Bar
	width  int
	height int
}

// NewView creates an article view. content and copySvc may be nil; without
// content the item is rendered as handed over by the listing, and without
// copySvc copies go to a clipboard-less indicator that only logs them.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	content driving.ContentService,
	render driving.RenderService,
	copySvc driving.CopyService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	if copySvc == nil {
		copySvc = services.NewCopyIndicator(nil)
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.ArticleHelp())

	return &View{
		styles:    s,
		keymap:    km,
		content:   content,
		render:    render,
		copy:      copySvc,
		ctx:       context.Background(),
		viewport:  viewport.New(80, 18),
		block:     -1,
		debouncer: services.NewDebouncer(ScrollSettle),
		headings:  make(chan string, 1),
		bar:       bar,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used to load items.
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

// Load starts rendering item.
func (v *View) Load(item domain.ContentItem) tea.Cmd {
	v.debouncer.Cancel()
	v.item = &item
	v.article = nil
	v.rendered = ""
	v.loading = true
	v.err = nil
	v.positions = nil
	v.blocks = nil
	v.block = -1
	v.active = ""
	v.viewport.SetContent("")
	v.viewport.GotoTop()
	v.bar.Clear()
	v.bar.SetState(status.StateLoading)

	content, render, ctx := v.content, v.render, v.ctx
	width := v.contentWidth()
	return func() tea.Msg {
		if render == nil {
			return messages.ArticleLoaded{Slug: item.Slug, Err: errNoRenderService}
		}
		if content != nil {
			fresh, err := content.Get(ctx, item.Kind, item.Slug)
			if err != nil {
				return messages.ArticleLoaded{Slug: item.Slug, Err: err}
			}
			item = *fresh
		}
		a, err := render.Article(item)
		if err != nil {
			return messages.ArticleLoaded{Slug: item.Slug, Err: err}
		}
		out, err := present.Terminal(present.ArticleMarkdown(a), width)
		if err != nil {
			return messages.ArticleLoaded{Slug: item.Slug, Err: err}
		}
		return messages.ArticleLoaded{Slug: item.Slug, Article: a, Rendered: out}
	}
}

// Update handles messages for the article view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ArticleLoaded:
		if v.item == nil || msg.Slug != v.item.Slug {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.show(msg.Article, msg.Rendered)
		return v, v.waitForHeading()

	case messages.ActiveHeadingChanged:
		v.waiting = false
		v.active = msg.ID
		return v, v.waitForHeading()

	case messages.CopyExpired:
		v.refreshCopyState()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		v.debouncer.Cancel()
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewListing}
		}

	case key.Matches(msg, v.keymap.NextBlock):
		v.nextBlock()
		return v, nil

	case key.Matches(msg, v.keymap.Copy):
		return v, v.copySelected()
	}

	before := v.viewport.YOffset
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	if v.viewport.YOffset != before {
		v.scrolled()
	}
	return v, cmd
}

// scrolled schedules an active-heading update once scrolling settles.
func (v *View) scrolled() {
	positions := v.positions
	scroll := v.viewport.YOffset * LineHeight
	ch := v.headings
	v.debouncer.Trigger(func() {
		id := services.ActiveHeading(positions, scroll)
		select {
		case ch <- id:
		default:
			// Replace a value nobody has read yet.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- id:
			default:
			}
		}
	})
}

func (v *View) waitForHeading() tea.Cmd {
	if v.waiting {
		return nil
	}
	v.waiting = true
	ch := v.headings
	return func() tea.Msg {
		return messages.ActiveHeadingChanged{ID: <-ch}
	}
}

func (v *View) show(a *domain.Article, rendered string) {
	v.article = a
	v.rendered = rendered
	v.viewport.SetContent(rendered)
	v.viewport.GotoTop()
	v.positions = HeadingPositions(rendered, a.TOC)
	v.active = services.ActiveHeading(v.positions, 0)

	v.blocks = v.blocks[:0]
	for i := range a.Instructions {
		if c := a.Instructions[i].Code; a.Instructions[i].Kind == domain.InstrCode && c != nil {
			v.blocks = append(v.blocks, c)
		}
	}
	v.block = -1

	v.bar.Clear()
	v.bar.SetState(status.StateReady)
	if len(v.blocks) > 0 {
		v.bar.SetMessage(fmt.Sprintf("%d code blocks", len(v.blocks)))
	}
}

func (v *View) nextBlock() {
	if len(v.blocks) == 0 {
		return
	}
	v.block = (v.block + 1) % len(v.blocks)
	v.bar.SetMessage(v.blockLabel())
	v.refreshCopyState()
}

func (v *View) blockLabel() string {
	c := v.blocks[v.block]
	label := fmt.Sprintf("Block %d/%d · %s", v.block+1, len(v.blocks), c.Language)
	if c.Filename != "" {
		label += " · " + c.Filename
	}
	return label
}

func (v *View) copySelected() tea.Cmd {
	if v.block < 0 || v.block >= len(v.blocks) {
		v.bar.SetMessage("Press tab to select a code block")
		return nil
	}
	v.copy.Copy(v.blocks[v.block].Source)
	v.refreshCopyState()
	return tea.Tick(services.CopiedDuration+50*time.Millisecond, func(time.Time) tea.Msg {
		return messages.CopyExpired{}
	})
}

func (v *View) refreshCopyState() {
	if v.copy.Copied() {
		v.bar.SetState(status.StateCopied)
		return
	}
	if v.err == nil {
		v.bar.SetState(status.StateReady)
	}
}

// HeadingPositions locates the rendered line of each contents entry and
// converts it to a pixel offset. Entries whose heading cannot be found
// are skipped.
func HeadingPositions(rendered string, toc []domain.TOCEntry) []domain.HeadingPosition {
	if len(toc) == 0 {
		return nil
	}
	lines := strings.Split(ansi.Strip(rendered), "\n")

	positions := make([]domain.HeadingPosition, 0, len(toc))
	from := 0
	for _, e := range toc {
		for i := from; i < len(lines); i++ {
			if isHeadingLine(lines[i], e.Text) {
				positions = append(positions, domain.HeadingPosition{ID: e.ID, Offset: i * LineHeight})
				from = i + 1
				break
			}
		}
	}
	return positions
}

func isHeadingLine(line, text string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	return strings.TrimSpace(strings.TrimLeft(trimmed, "#")) == text
}

// View renders the article.
func (v *View) View() string {
	var b strings.Builder

	title := "Article"
	if v.item != nil {
		title = v.item.Title
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Rendering..."))
		b.WriteString("\n\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Could not render article: %v", v.err)))
		b.WriteString("\n\n")
	case v.article != nil:
		b.WriteString(v.sectionLine())
		b.WriteString("\n")
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(v.bar.View())
	return b.String()
}

func (v *View) sectionLine() string {
	if v.article == nil || len(v.article.TOC) == 0 {
		return v.styles.Muted.Render(fmt.Sprintf("%3.f%%", v.viewport.ScrollPercent()*100))
	}
	for _, e := range v.article.TOC {
		if e.ID == v.active {
			return v.styles.Heading.Render("§ " + e.Text)
		}
	}
	return v.styles.Muted.Render("§ " + v.article.TOC[0].Text)
}

func (v *View) contentWidth() int {
	return max(v.width-4, 20)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	// title, section line and status bar
	v.viewport.Width = width
	v.viewport.Height = max(height-4, 3)
	v.bar.SetWidth(width)
}

// Close cancels pending heading updates.
func (v *View) Close() {
	v.debouncer.Cancel()
}

// Item returns the article's content item.
func (v *View) Item() *domain.ContentItem {
	return v.item
}

// Article returns the loaded article, nil while loading.
func (v *View) Article() *domain.Article {
	return v.article
}

// Rendered returns the terminal rendering.
func (v *View) Rendered() string {
	return v.rendered
}

// ActiveHeading returns the id of the current section.
func (v *View) ActiveHeading() string {
	return v.active
}

// Positions returns the heading offsets of the loaded article.
func (v *View) Positions() []domain.HeadingPosition {
	return v.positions
}

// SelectedBlock returns the index of the selected code block, -1 if none.
func (v *View) SelectedBlock() int {
	return v.block
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
