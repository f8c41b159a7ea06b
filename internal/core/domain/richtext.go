package domain

import "strings"

// BlockType identifies a rich-text block.
type BlockType string

// Block types understood by the renderer. Anything else is preserved
// verbatim in Block.Type and treated as unknown.
const (
	BlockParagraph  BlockType = "paragraph"
	BlockHeading    BlockType = "heading"
	BlockBlockquote BlockType = "blockquote"
	BlockBulletList BlockType = "bulletList"
	BlockNumberList BlockType = "numberList"
	BlockImage      BlockType = "image"
	BlockCode       BlockType = "code"
)

// IsKnown returns true for block types with a renderer mapping.
func (t BlockType) IsKnown() bool {
	switch t {
	case BlockParagraph, BlockHeading, BlockBlockquote, BlockBulletList,
		BlockNumberList, BlockImage, BlockCode:
		return true
	default:
		return false
	}
}

// MarkType identifies an inline mark.
type MarkType string

// Inline marks. A span with no marks is plain text.
const (
	MarkBold       MarkType = "bold"
	MarkItalic     MarkType = "italic"
	MarkInlineCode MarkType = "inlineCode"
	MarkLink       MarkType = "link"
)

// Mark decorates a span. Href is set only for links.
type Mark struct {
	Type MarkType `json:"type"`
	Href string   `json:"href,omitempty"`
}

// Span is a run of text sharing the same marks.
type Span struct {
	Text  string `json:"text"`
	Marks []Mark `json:"marks,omitempty"`
}

// Has reports whether the span carries the mark type.
func (s Span) Has(t MarkType) bool {
	for _, m := range s.Marks {
		if m.Type == t {
			return true
		}
	}
	return false
}

// Link returns the href of the first link mark.
func (s Span) Link() string {
	for _, m := range s.Marks {
		if m.Type == MarkLink {
			return m.Href
		}
	}
	return ""
}

// ListItem is one entry of a bullet or numbered list.
type ListItem struct {
	Spans []Span `json:"spans"`
}

// Text returns the concatenated span text.
func (li ListItem) Text() string {
	return spansText(li.Spans)
}

// CodeBlock is source code with an optional filename.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Source   string `json:"source"`
	Filename string `json:"filename,omitempty"`
}

// Block is one element of a rich document.
type Block struct {
	Type BlockType `json:"type"`

	// Key is the store's block key, when it has one.
	Key string `json:"key,omitempty"`

	// Level is the heading level (1-6).
	Level int `json:"level,omitempty"`

	Spans []Span     `json:"spans,omitempty"`
	Items []ListItem `json:"items,omitempty"`
	Image *ImageRef  `json:"image,omitempty"`
	Code  *CodeBlock `json:"code,omitempty"`

	// Text is a best-effort plain-text rendition for unknown block types.
	Text string `json:"text,omitempty"`
}

// PlainText returns the block's text with marks removed.
func (b Block) PlainText() string {
	switch {
	case len(b.Spans) > 0:
		return spansText(b.Spans)
	case len(b.Items) > 0:
		parts := make([]string, 0, len(b.Items))
		for _, it := range b.Items {
			parts = append(parts, it.Text())
		}
		return strings.Join(parts, "\n")
	case b.Code != nil:
		return b.Code.Source
	case b.Image != nil:
		return b.Image.Alt
	default:
		return b.Text
	}
}

// RichDocument is an ordered sequence of blocks.
type RichDocument struct {
	Blocks []Block `json:"blocks"`
}

// IsEmpty reports whether the document has no blocks.
func (d RichDocument) IsEmpty() bool {
	return len(d.Blocks) == 0
}

func spansText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
