package services

import (
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// DefaultExcerptLength is the listing-card excerpt length in characters.
const DefaultExcerptLength = 150

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

// Excerpt returns the first span of the first block, cut to limit characters
// with "..." appended when it was longer.
func Excerpt(doc domain.RichDocument, limit int) string {
	if len(doc.Blocks) == 0 {
		return ""
	}
	first := doc.Blocks[0]

	var text string
	switch {
	case len(first.Spans) > 0:
		text = first.Spans[0].Text
	case len(first.Items) > 0 && len(first.Items[0].Spans) > 0:
		text = first.Items[0].Spans[0].Text
	}

	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// WordCount counts whitespace-separated words in text-bearing blocks.
// Code and images are not counted.
func WordCount(doc domain.RichDocument) int {
	n := 0
	for _, b := range doc.Blocks {
		if b.Type == domain.BlockCode || b.Type == domain.BlockImage {
			continue
		}
		n += len(strings.Fields(b.PlainText()))
	}
	return n
}

// ReadingMinutes estimates reading time, rounded up. Non-empty documents
// take at least one minute.
func ReadingMinutes(doc domain.RichDocument) int {
	words := WordCount(doc)
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// TitleCase capitalises the first letter of each word and lower-cases the rest.
// Category titles are stored in mixed case and displayed this way.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
