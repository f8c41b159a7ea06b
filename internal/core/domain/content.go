package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentKind identifies one of the three content collections.
type ContentKind string

// Content kinds served by the site.
const (
	// KindPost is a blog article.
	KindPost ContentKind = "post"

	// KindWork is a portfolio project.
	KindWork ContentKind = "work"

	// KindPractice is a tech-practice showcase entry.
	KindPractice ContentKind = "practice"
)

// AllContentKinds returns every content kind in display order.
func AllContentKinds() []ContentKind {
	return []ContentKind{KindPost, KindWork, KindPractice}
}

// IsValid returns true if the kind is recognised.
func (k ContentKind) IsValid() bool {
	switch k {
	case KindPost, KindWork, KindPractice:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ContentKind) String() string {
	return string(k)
}

// Plural returns the collection name used in URLs and commands.
func (k ContentKind) Plural() string {
	switch k {
	case KindPost:
		return "posts"
	case KindWork:
		return "works"
	case KindPractice:
		return "practices"
	default:
		return string(k)
	}
}

// Description returns a human-readable name for the collection.
func (k ContentKind) Description() string {
	switch k {
	case KindPost:
		return "Blog"
	case KindWork:
		return "Our Work"
	case KindPractice:
		return "Tech Practices"
	default:
		return "Unknown"
	}
}

// ParseContentKind accepts singular, plural and section aliases.
func ParseContentKind(s string) (ContentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post", "posts", "blog", "article", "articles":
		return KindPost, nil
	case "work", "works", "our-work", "project", "projects":
		return KindWork, nil
	case "practice", "practices", "tech-practices":
		return KindPractice, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
	}
}

// CategoryRef is a reference from an item to its category.
// Works and practices reference a category document by id. Posts carry
// category titles only, so for posts ID == Label.
type CategoryRef struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label"`
}

// ImageRef is an unresolved reference to an image asset.
type ImageRef struct {
	AssetRef string `json:"assetRef" validate:"required"`
	Alt      string `json:"alt,omitempty"`
}

// ContentItem generalises posts, works and practices.
// Optional fields are left at their zero value when absent.
type ContentItem struct {
	ID    string      `json:"id" validate:"required"`
	Kind  ContentKind `json:"kind" validate:"required,oneof=post work practice"`
	Slug  string      `json:"slug" validate:"required"`
	Title string      `json:"title" validate:"required"`

	// Description is the short description for works and practices,
	// and the optional excerpt for posts.
	Description string `json:"description,omitempty"`

	Categories []CategoryRef `json:"categories,omitempty" validate:"dive"`
	Tags       []string      `json:"tags,omitempty"`
	TechTags   []string      `json:"techTags,omitempty"`

	// Featured segregates posts into the featured strip.
	Featured bool `json:"featured,omitempty"`

	// NoIndex excludes the item from the sitemap.
	NoIndex bool `json:"noIndex,omitempty"`

	PublishedAt time.Time `json:"publishedAt,omitzero"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`

	// Order is the explicit ascending position of a work. Nil sorts last.
	Order *int `json:"order,omitempty"`

	ReadingTime   int       `json:"readingTime,omitempty" validate:"gte=0"`
	Author        string    `json:"author,omitempty"`
	ClientName    string    `json:"clientName,omitempty"`
	URL           string    `json:"url,omitempty" validate:"omitempty,url"`
	RepositoryURL string    `json:"repositoryUrl,omitempty" validate:"omitempty,url"`
	Progress      int       `json:"progress,omitempty" validate:"gte=0,lte=100"`
	LastUpdated   time.Time `json:"lastUpdated,omitzero"`
	MainImage     *ImageRef `json:"mainImage,omitempty"`

	Body RichDocument `json:"body"`
}

// SearchableText is the lower-cased title, description and tags.
func (c *ContentItem) SearchableText() string {
	parts := make([]string, 0, 2+len(c.Tags)+len(c.TechTags))
	parts = append(parts, c.Title, c.Description)
	parts = append(parts, c.Tags...)
	parts = append(parts, c.TechTags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// AllTags returns display tags followed by tech tags.
func (c *ContentItem) AllTags() []string {
	if len(c.TechTags) == 0 {
		return c.Tags
	}
	out := make([]string, 0, len(c.Tags)+len(c.TechTags))
	out = append(out, c.Tags...)
	return append(out, c.TechTags...)
}

// PrimaryCategory returns the first category or nil.
func (c *ContentItem) PrimaryCategory() *CategoryRef {
	if len(c.Categories) == 0 {
		return nil
	}
	return &c.Categories[0]
}

// SortTime returns the date the item is ordered and displayed by.
func (c *ContentItem) SortTime() time.Time {
	if c.Kind == KindPost && !c.PublishedAt.IsZero() {
		return c.PublishedAt
	}
	return c.CreatedAt
}

// Path returns the site path for the item's detail page.
func (c *ContentItem) Path() string {
	switch c.Kind {
	case KindPost:
		return "/blog/" + c.Slug
	default:
		return "/our-work/" + c.Slug
	}
}

// DisplayDate formats t the way the site prints dates ("January 2, 2006").
// Zero times format as an empty string.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}
