package sanity

import (
	"math"
	"strings"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/logger"
)

// rawDocument is the projected shape of posts, works and practices.
type rawDocument struct {
	ID            string          `json:"_id"`
	Type          string          `json:"_type"`
	CreatedAt     string          `json:"_createdAt"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Author        string          `json:"author"`
	MainImage     *rawImage       `json:"mainImage"`
	Categories    []string        `json:"categories"`
	Category      *rawCategoryRef `json:"category"`
	PublishedAt   string          `json:"publishedAt"`
	IsFeatured    bool            `json:"isFeatured"`
	ReadingTime   float64         `json:"readingTime"`
	NoIndex       bool            `json:"noIndex"`
	ClientName    string          `json:"clientName"`
	URL           string          `json:"url"`
	RepositoryURL string          `json:"repositoryUrl"`
	Tags          []string        `json:"tags"`
	TechTags      []string        `json:"techTags"`
	Order         *float64        `json:"order"`
	LastUpdated   string          `json:"lastUpdated"`
	Progress      float64         `json:"progress"`
	Body          []rawBlock      `json:"body"`
}

type rawAsset struct {
	Ref string `json:"_ref"`
}

type rawImage struct {
	Asset rawAsset `json:"asset"`
	Alt   string   `json:"alt"`
}

type rawCategoryRef struct {
	Ref   string `json:"_ref"`
	Title string `json:"title"`
}

// rawBlock covers the portable-text block types used by the studio
// schema: text blocks, images and code.
type rawBlock struct {
	Type     string       `json:"_type"`
	Key      string       `json:"_key"`
	Style    string       `json:"style"`
	ListItem string       `json:"listItem"`
	Level    int          `json:"level"`
	Children []rawSpan    `json:"children"`
	MarkDefs []rawMarkDef `json:"markDefs"`

	// image
	Asset *rawAsset `json:"asset"`
	Alt   string    `json:"alt"`

	// code
	Language string `json:"language"`
	Code     string `json:"code"`
	Filename string `json:"filename"`

	Text string `json:"text"`
}

type rawSpan struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

type rawMarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href"`
}

// decodeDocument maps a raw document onto a content item. kind is used
// when the document carries no recognisable _type.
func decodeDocument(raw rawDocument, kind domain.ContentKind) domain.ContentItem {
	if k := domain.ContentKind(raw.Type); k.IsValid() {
		kind = k
	}

	item := domain.ContentItem{
		ID:            raw.ID,
		Kind:          kind,
		Slug:          raw.Slug,
		Title:         raw.Title,
		Description:   raw.Description,
		Tags:          raw.Tags,
		TechTags:      raw.TechTags,
		Featured:      raw.IsFeatured,
		NoIndex:       raw.NoIndex,
		PublishedAt:   parseTime(raw.PublishedAt),
		CreatedAt:     parseTime(raw.CreatedAt),
		LastUpdated:   parseTime(raw.LastUpdated),
		ReadingTime:   int(math.Ceil(raw.ReadingTime)),
		Author:        raw.Author,
		ClientName:    raw.ClientName,
		URL:           raw.URL,
		RepositoryURL: raw.RepositoryURL,
		Progress:      int(raw.Progress),
		Body:          DecodeBody(raw.Body),
	}

	if raw.Order != nil {
		order := int(*raw.Order)
		item.Order = &order
	}

	if raw.MainImage != nil && raw.MainImage.Asset.Ref != "" {
		item.MainImage = &domain.ImageRef{AssetRef: raw.MainImage.Asset.Ref, Alt: raw.MainImage.Alt}
	}

	// Posts reference categories by title; works and practices by document id.
	for _, title := range raw.Categories {
		if title != "" {
			item.Categories = append(item.Categories, domain.CategoryRef{ID: title, Label: title})
		}
	}
	if raw.Category != nil && raw.Category.Ref != "" {
		item.Categories = append(item.Categories, domain.CategoryRef{ID: raw.Category.Ref, Label: raw.Category.Title})
	}

	return item
}

var timeLayouts = []string{time.RFC3339Nano, time.DateOnly}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	logger.Debug("unparseable timestamp %q ignored", s)
	return time.Time{}
}

// DecodeBody converts portable text into a rich document. Consecutive list
// items of the same type are grouped into one list block; nesting levels
// are flattened.
func DecodeBody(raw []rawBlock) domain.RichDocument {
	doc := domain.RichDocument{Blocks: make([]domain.Block, 0, len(raw))}
	inList := false

	for _, rb := range raw {
		if rb.Type == "block" && rb.ListItem != "" {
			listType := domain.BlockBulletList
			if rb.ListItem == "number" {
				listType = domain.BlockNumberList
			}
			item := domain.ListItem{Spans: decodeSpans(rb.Children, rb.MarkDefs)}

			last := len(doc.Blocks) - 1
			if inList && last >= 0 && doc.Blocks[last].Type == listType {
				doc.Blocks[last].Items = append(doc.Blocks[last].Items, item)
			} else {
				doc.Blocks = append(doc.Blocks, domain.Block{Type: listType, Key: rb.Key, Items: []domain.ListItem{item}})
			}
			inList = true
			continue
		}

		inList = false
		doc.Blocks = append(doc.Blocks, decodeBlock(rb))
	}

	return doc
}

func decodeBlock(rb rawBlock) domain.Block {
	switch rb.Type {
	case "block":
		b := domain.Block{Key: rb.Key, Spans: decodeSpans(rb.Children, rb.MarkDefs)}
		switch {
		case rb.Style == "blockquote":
			b.Type = domain.BlockBlockquote
		case len(rb.Style) == 2 && rb.Style[0] == 'h' && rb.Style[1] >= '1' && rb.Style[1] <= '6':
			b.Type = domain.BlockHeading
			b.Level = int(rb.Style[1] - '0')
		default:
			b.Type = domain.BlockParagraph
		}
		return b
	case "image":
		b := domain.Block{Type: domain.BlockImage, Key: rb.Key, Image: &domain.ImageRef{Alt: rb.Alt}}
		if rb.Asset != nil {
			b.Image.AssetRef = rb.Asset.Ref
		}
		return b
	case "code":
		return domain.Block{
			Type: domain.BlockCode,
			Key:  rb.Key,
			Code: &domain.CodeBlock{Language: rb.Language, Source: rb.Code, Filename: rb.Filename},
		}
	default:
		text := rb.Text
		if text == "" {
			var sb strings.Builder
			for _, c := range rb.Children {
				sb.WriteString(c.Text)
			}
			text = sb.String()
		}
		return domain.Block{Type: domain.BlockType(rb.Type), Key: rb.Key, Text: text}
	}
}

func decodeSpans(children []rawSpan, defs []rawMarkDef) []domain.Span {
	links := make(map[string]string, len(defs))
	for _, d := range defs {
		if d.Type == "link" {
			links[d.Key] = d.Href
		}
	}

	spans := make([]domain.Span, 0, len(children))
	for _, c := range children {
		if c.Type != "" && c.Type != "span" {
			continue
		}
		span := domain.Span{Text: c.Text}
		for _, m := range c.Marks {
			switch m {
			case "strong":
				span.Marks = append(span.Marks, domain.Mark{Type: domain.MarkBold})
			case "em":
				span.Marks = append(span.Marks, domain.Mark{Type: domain.MarkItalic})
			case "code":
				span.Marks = append(span.Marks, domain.Mark{Type: domain.MarkInlineCode})
			default:
				if href, ok := links[m]; ok {
					span.Marks = append(span.Marks, domain.Mark{Type: domain.MarkLink, Href: href})
				}
			}
		}
		spans = append(spans, span)
	}
	return spans
}
