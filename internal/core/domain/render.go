package domain

// InstructionKind identifies a render instruction.
type InstructionKind string

// Instruction kinds. Every known block type maps to exactly one kind;
// list items appear only as children of list instructions.
const (
	InstrParagraph  InstructionKind = "paragraph"
	InstrHeading    InstructionKind = "heading"
	InstrBlockquote InstructionKind = "blockquote"
	InstrBulletList InstructionKind = "bulletList"
	InstrNumberList InstructionKind = "numberList"
	InstrListItem   InstructionKind = "listItem"
	InstrImage      InstructionKind = "image"
	InstrCode       InstructionKind = "code"
	InstrFallback   InstructionKind = "fallback"
)

// TextRun is a span with its marks resolved to flags.
type TextRun struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
	Code   bool   `json:"code,omitempty"`
	Href   string `json:"href,omitempty"`
}

// ImageInstruction is a resolved image.
type ImageInstruction struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// CodeInstruction is a code block ready for display.
type CodeInstruction struct {
	Language string `json:"language"`
	Source   string `json:"source"`
	Filename string `json:"filename,omitempty"`

	// ShowHeader is true when a filename bar with a copy affordance is shown.
	ShowHeader bool `json:"showHeader"`

	// Highlighted is the highlighter's output, empty if highlighting failed.
	Highlighted string `json:"highlighted,omitempty"`
}

// Instruction is one typed render step produced from a block.
type Instruction struct {
	Kind InstructionKind `json:"kind"`

	// Level is the heading level.
	Level int `json:"level,omitempty"`

	// AnchorID is the URL fragment of a heading.
	AnchorID string `json:"anchorId,omitempty"`

	// Text is the plain text of the instruction.
	Text string `json:"text,omitempty"`

	Runs     []TextRun         `json:"runs,omitempty"`
	Children []Instruction     `json:"children,omitempty"`
	Image    *ImageInstruction `json:"image,omitempty"`
	Code     *CodeInstruction  `json:"code,omitempty"`

	// SourceType is the original block type of a fallback instruction.
	SourceType string `json:"sourceType,omitempty"`
}

// TOCEntry is a table-of-contents link.
type TOCEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// HeadingPosition is the vertical offset of a rendered heading.
type HeadingPosition struct {
	ID     string `json:"id"`
	Offset int    `json:"offset"`
}

// ImageOptions are optional image transformations.
type ImageOptions struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
}

// Article is a rendered content item.
type Article struct {
	Item         ContentItem    `json:"item"`
	Instructions []Instruction  `json:"instructions"`
	TOC          []TOCEntry     `json:"toc"`
	Anchors      map[string]int `json:"anchors"`
	Excerpt      string         `json:"excerpt"`
	WordCount    int            `json:"wordCount"`
	ReadingTime  int            `json:"readingTime"`
	ImageURL     string         `json:"imageUrl,omitempty"`
}
