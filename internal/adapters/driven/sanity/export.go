package sanity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vabank-dev/vabank/internal/core/domain"
)

// maxExportLine bounds one NDJSON document in a dataset export.
const maxExportLine = 16 << 20

// exportDocument is a document as written by `sanity dataset export`:
// references are unresolved and fields carry their schema names.
type exportDocument struct {
	ID               string      `json:"_id"`
	Type             string      `json:"_type"`
	CreatedAt        string      `json:"_createdAt"`
	Title            string      `json:"title"`
	Name             string      `json:"name"`
	Slug             *exportRef  `json:"slug"`
	Excerpt          string      `json:"excerpt"`
	ShortDescription string      `json:"shortDescription"`
	Author           *exportRef  `json:"author"`
	Categories       []exportRef `json:"categories"`
	Category         *exportRef  `json:"category"`
	MainImage        *rawImage   `json:"mainImage"`
	PublishedAt      string      `json:"publishedAt"`
	IsFeatured       bool        `json:"isFeatured"`
	ReadingTime      float64     `json:"readingTime"`
	Seo              *exportSEO  `json:"seo"`
	Body             []rawBlock  `json:"body"`
	LongDescription  []rawBlock  `json:"longDescription"`
	ClientName       string      `json:"clientName"`
	URL              string      `json:"url"`
	RepositoryURL    string      `json:"repositoryUrl"`
	Tags             []string    `json:"tags"`
	TechTags         []string    `json:"techTags"`
	Order            *float64    `json:"order"`
	LastUpdated      string      `json:"lastUpdated"`
	Progress         float64     `json:"progress"`
}

type exportRef struct {
	Ref     string `json:"_ref"`
	Current string `json:"current"`
}

type exportSEO struct {
	MetaDescription string `json:"metaDescription"`
	NoIndex         bool   `json:"noIndex"`
}

// ParseExport reads an NDJSON dataset export and returns the published
// posts, works and practices with category and author references resolved.
// Items are returned in file order.
func ParseExport(r io.Reader) (map[domain.ContentKind][]domain.ContentItem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxExportLine)

	var docs []exportDocument
	titles := make(map[string]string)
	authors := make(map[string]string)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var doc exportDocument
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if strings.HasPrefix(doc.ID, "drafts.") {
			continue
		}

		switch doc.Type {
		case "category":
			titles[doc.ID] = doc.Title
		case "author":
			authors[doc.ID] = doc.Name
		default:
			if domain.ContentKind(doc.Type).IsValid() {
				docs = append(docs, doc)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	out := make(map[domain.ContentKind][]domain.ContentItem)
	for _, doc := range docs {
		kind := domain.ContentKind(doc.Type)
		out[kind] = append(out[kind], decodeDocument(doc.project(titles, authors), kind))
	}
	return out, nil
}

// project rewrites an export document into the shape the GROQ
// projections produce.
func (d exportDocument) project(titles, authors map[string]string) rawDocument {
	raw := rawDocument{
		ID:            d.ID,
		Type:          d.Type,
		CreatedAt:     d.CreatedAt,
		MainImage:     d.MainImage,
		PublishedAt:   d.PublishedAt,
		IsFeatured:    d.IsFeatured,
		ReadingTime:   d.ReadingTime,
		ClientName:    d.ClientName,
		URL:           d.URL,
		RepositoryURL: d.RepositoryURL,
		Tags:          d.Tags,
		TechTags:      d.TechTags,
		Order:         d.Order,
		LastUpdated:   d.LastUpdated,
		Progress:      d.Progress,
	}
	if d.Slug != nil {
		raw.Slug = d.Slug.Current
	}
	if d.Seo != nil {
		raw.NoIndex = d.Seo.NoIndex
	}

	if d.Type == string(domain.KindPost) {
		raw.Title = d.Title
		raw.Body = d.Body
		raw.Description = d.Excerpt
		if raw.Description == "" && d.Seo != nil {
			raw.Description = d.Seo.MetaDescription
		}
		if d.Author != nil {
			raw.Author = authors[d.Author.Ref]
		}
		for _, c := range d.Categories {
			raw.Categories = append(raw.Categories, titles[c.Ref])
		}
		return raw
	}

	raw.Title = d.Name
	raw.Description = d.ShortDescription
	raw.Body = d.LongDescription
	if d.Category != nil && d.Category.Ref != "" {
		raw.Category = &rawCategoryRef{Ref: d.Category.Ref, Title: titles[d.Category.Ref]}
	}
	return raw
}
