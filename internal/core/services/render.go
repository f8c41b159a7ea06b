package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driving.RenderService = (*Renderer)(nil)

// DefaultCodeLanguage is assumed for code blocks without a language.
const DefaultCodeLanguage = "javascript"

// PlaceholderImage is used when an image reference cannot be resolved.
const PlaceholderImage = "/placeholder.svg"

// Body images are requested at the article column width.
var bodyImageOptions = domain.ImageOptions{Width: 800, Height: 400}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Renderer maps rich documents to render instructions.
type Renderer struct {
	images      driven.ImageResolver
	highlighter driven.Highlighter
	strict      bool
}

// NewRenderer creates a renderer. images and highlighter may be nil.
// In strict mode an unknown block type fails the render instead of
// degrading to a plain-text fallback.
func NewRenderer(images driven.ImageResolver, highlighter driven.Highlighter, strict bool) *Renderer {
	return &Renderer{
		images:      images,
		highlighter: highlighter,
		strict:      strict,
	}
}

// Render maps each block to exactly one instruction, in document order.
func (r *Renderer) Render(doc domain.RichDocument) ([]domain.Instruction, error) {
	out := make([]domain.Instruction, 0, len(doc.Blocks))
	for i, block := range doc.Blocks {
		instr, err := r.renderBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, instr)
	}
	return out, nil
}

// Article renders an item's body and derives its reading metadata.
func (r *Renderer) Article(item domain.ContentItem) (*domain.Article, error) {
	instrs, err := r.Render(item.Body)
	if err != nil {
		return nil, fmt.Errorf("render %s %q: %w", item.Kind, item.Slug, err)
	}

	reading := item.ReadingTime
	if reading <= 0 {
		reading = ReadingMinutes(item.Body)
	}

	excerpt := item.Description
	if excerpt == "" {
		excerpt = Excerpt(item.Body, DefaultExcerptLength)
	}

	article := &domain.Article{
		Item:         item,
		Instructions: instrs,
		TOC:          TableOfContents(instrs),
		Anchors:      Anchors(instrs),
		Excerpt:      excerpt,
		WordCount:    WordCount(item.Body),
		ReadingTime:  reading,
	}
	if item.MainImage != nil {
		article.ImageURL = r.imageURL(*item.MainImage, domain.ImageOptions{Width: 1200, Height: 630})
	}
	return article, nil
}

func (r *Renderer) renderBlock(b domain.Block) (domain.Instruction, error) {
	switch b.Type {
	case domain.BlockParagraph:
		return textInstruction(domain.InstrParagraph, b.Spans), nil
	case domain.BlockBlockquote:
		return textInstruction(domain.InstrBlockquote, b.Spans), nil
	case domain.BlockHeading:
		instr := textInstruction(domain.InstrHeading, b.Spans)
		instr.Level = clampLevel(b.Level)
		instr.AnchorID = HeadingID(instr.Text)
		return instr, nil
	case domain.BlockBulletList:
		return listInstruction(domain.InstrBulletList, b.Items), nil
	case domain.BlockNumberList:
		return listInstruction(domain.InstrNumberList, b.Items), nil
	case domain.BlockImage:
		return r.imageInstruction(b), nil
	case domain.BlockCode:
		return r.codeInstruction(b), nil
	default:
		if r.strict {
			return domain.Instruction{}, fmt.Errorf("%w: %q", domain.ErrUnknownBlock, b.Type)
		}
		logger.Warn("unknown block type %q rendered as plain text", b.Type)
		return domain.Instruction{
			Kind:       domain.InstrFallback,
			Text:       b.PlainText(),
			SourceType: string(b.Type),
		}, nil
	}
}

func (r *Renderer) imageInstruction(b domain.Block) domain.Instruction {
	img := &domain.ImageInstruction{URL: PlaceholderImage}
	if b.Image != nil {
		img.Alt = b.Image.Alt
		img.URL = r.imageURL(*b.Image, bodyImageOptions)
	}
	return domain.Instruction{Kind: domain.InstrImage, Text: img.Alt, Image: img}
}

func (r *Renderer) imageURL(ref domain.ImageRef, opts domain.ImageOptions) string {
	if r.images == nil || ref.AssetRef == "" {
		return PlaceholderImage
	}
	url, err := r.images.URL(ref, opts)
	if err != nil {
		logger.Warn("resolve image %q: %v", ref.AssetRef, err)
		return PlaceholderImage
	}
	return url
}

func (r *Renderer) codeInstruction(b domain.Block) domain.Instruction {
	code := &domain.CodeInstruction{Language: DefaultCodeLanguage}
	if b.Code != nil {
		if b.Code.Language != "" {
			code.Language = b.Code.Language
		}
		code.Source = b.Code.Source
		code.Filename = b.Code.Filename
		code.ShowHeader = b.Code.Filename != ""
	}

	if r.highlighter != nil && code.Source != "" {
		out, err := r.highlighter.Highlight(code.Language, code.Source)
		if err != nil {
			logger.Warn("highlight %s block: %v", code.Language, err)
		} else {
			code.Highlighted = out
		}
	}

	return domain.Instruction{Kind: domain.InstrCode, Text: code.Source, Code: code}
}

func textInstruction(kind domain.InstructionKind, spans []domain.Span) domain.Instruction {
	runs := make([]domain.TextRun, 0, len(spans))
	var sb strings.Builder
	for _, s := range spans {
		runs = append(runs, domain.TextRun{
			Text:   s.Text,
			Bold:   s.Has(domain.MarkBold),
			Italic: s.Has(domain.MarkItalic),
			Code:   s.Has(domain.MarkInlineCode),
			Href:   s.Link(),
		})
		sb.WriteString(s.Text)
	}
	return domain.Instruction{Kind: kind, Text: sb.String(), Runs: runs}
}

func listInstruction(kind domain.InstructionKind, items []domain.ListItem) domain.Instruction {
	children := make([]domain.Instruction, 0, len(items))
	for _, it := range items {
		children = append(children, textInstruction(domain.InstrListItem, it.Spans))
	}
	return domain.Instruction{Kind: kind, Children: children}
}

func clampLevel(level int) int {
	switch {
	case level < 1:
		return 2
	case level > 6:
		return 6
	default:
		return level
	}
}

// HeadingID derives a URL fragment from heading text: lower-cased,
// non-word characters removed, whitespace runs turned into hyphens.
func HeadingID(text string) string {
	id := strings.ToLower(text)
	id = nonWordRe.ReplaceAllString(id, "")
	return whitespaceRe.ReplaceAllString(id, "-")
}

// Anchors maps heading ids to instruction indexes. When two headings share
// an id the later one wins.
func Anchors(instrs []domain.Instruction) map[string]int {
	anchors := make(map[string]int)
	for i, in := range instrs {
		if in.Kind == domain.InstrHeading && in.AnchorID != "" {
			anchors[in.AnchorID] = i
		}
	}
	return anchors
}

// TableOfContents lists the level-2 headings in order.
func TableOfContents(instrs []domain.Instruction) []domain.TOCEntry {
	var toc []domain.TOCEntry
	for _, in := range instrs {
		if in.Kind == domain.InstrHeading && in.Level == 2 && in.AnchorID != "" {
			toc = append(toc, domain.TOCEntry{ID: in.AnchorID, Text: in.Text})
		}
	}
	return toc
}

// ActiveHeadingOffset is how far below the scroll position a heading still
// counts as active.
const ActiveHeadingOffset = 200

// ActiveHeading returns the id of the last heading at or above
// scroll+ActiveHeadingOffset, or "" when none has been reached.
func ActiveHeading(positions []domain.HeadingPosition, scroll int) string {
	active := ""
	for _, p := range positions {
		if p.Offset <= scroll+ActiveHeadingOffset {
			active = p.ID
		}
	}
	return active
}
