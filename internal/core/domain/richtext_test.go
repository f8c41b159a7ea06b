package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockType_IsKnown(t *testing.T) {
	assert.True(t, BlockHeading.IsKnown())
	assert.True(t, BlockCode.IsKnown())
	assert.False(t, BlockType("table").IsKnown())
}

func TestSpan_Marks(t *testing.T) {
	s := Span{Text: "docs", Marks: []Mark{{Type: MarkBold}, {Type: MarkLink, Href: "https://go.dev"}}}

	assert.True(t, s.Has(MarkBold))
	assert.False(t, s.Has(MarkItalic))
	assert.Equal(t, "https://go.dev", s.Link())
	assert.Empty(t, Span{Text: "plain"}.Link())
}

func TestBlock_PlainText(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  string
	}{
		{"spans", Block{Type: BlockParagraph, Spans: []Span{{Text: "Hello, "}, {Text: "World"}}}, "Hello, World"},
		{"list", Block{Type: BlockBulletList, Items: []ListItem{{Spans: []Span{{Text: "one"}}}, {Spans: []Span{{Text: "two"}}}}}, "one\ntwo"},
		{"code", Block{Type: BlockCode, Code: &CodeBlock{Source: "x := 1"}}, "x := 1"},
		{"image", Block{Type: BlockImage, Image: &ImageRef{AssetRef: "image-a", Alt: "diagram"}}, "diagram"},
		{"unknown", Block{Type: "table", Text: "raw"}, "raw"},
		{"empty", Block{Type: BlockParagraph}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.block.PlainText())
		})
	}
}

func TestRichDocument_IsEmpty(t *testing.T) {
	assert.True(t, RichDocument{}.IsEmpty())
	assert.False(t, RichDocument{Blocks: []Block{{Type: BlockParagraph}}}.IsEmpty())
}
