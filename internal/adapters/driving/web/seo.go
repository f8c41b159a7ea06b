package web

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Paths crawlers are asked to skip.
var disallowedPaths = []string{"/studio/", "/admin/", "/api/", "/draft-mode/", "/_next/", "/favicon.ico"}

// AI crawlers blocked from the whole site.
var blockedBots = []string{"GPTBot", "ChatGPT-User", "CCBot", "anthropic-ai"}

// publisherLogo is the organisation logo used in structured data.
const publisherLogo = "https://vabank.dev/vabank-light.png"

func (s *Server) robots(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	for _, p := range disallowedPaths {
		fmt.Fprintf(&b, "Disallow: %s\n", p)
	}
	for _, bot := range blockedBots {
		fmt.Fprintf(&b, "\nUser-agent: %s\nDisallow: /\n", bot)
	}
	fmt.Fprintf(&b, "\nHost: %s\nSitemap: %s/sitemap.xml\n", s.site.BaseURL, s.site.BaseURL)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapEntries lists the static pages, then indexable posts and works.
func (s *Server) sitemapEntries(posts, works []domain.ContentItem, now time.Time) []sitemapURL {
	stamp := func(t time.Time) string {
		if t.IsZero() {
			t = now
		}
		return t.UTC().Format(time.RFC3339)
	}

	entries := []sitemapURL{
		{Loc: s.site.BaseURL, LastMod: stamp(now), ChangeFreq: "monthly", Priority: 1.0},
		{Loc: s.site.BaseURL + "/our-work", LastMod: stamp(now), ChangeFreq: "weekly", Priority: 0.8},
		{Loc: s.site.BaseURL + "/blog", LastMod: stamp(now), ChangeFreq: "weekly", Priority: 0.7},
	}
	for _, p := range posts {
		if p.Slug == "" || p.NoIndex {
			continue
		}
		priority := 0.6
		if p.Featured {
			priority = 0.9
		}
		entries = append(entries, sitemapURL{
			Loc:        s.site.BaseURL + p.Path(),
			LastMod:    stamp(p.PublishedAt),
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}
	for _, wk := range works {
		if wk.Slug == "" || wk.NoIndex {
			continue
		}
		entries = append(entries, sitemapURL{
			Loc:        s.site.BaseURL + wk.Path(),
			LastMod:    stamp(now),
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}
	return entries
}

func (s *Server) sitemap(w http.ResponseWriter, r *http.Request) {
	posts, err := s.ports.Content.List(r.Context(), domain.KindPost)
	if err != nil {
		logger.Warn("sitemap: %v", err)
	}
	works, err := s.ports.Content.List(r.Context(), domain.KindWork)
	if err != nil {
		logger.Warn("sitemap: %v", err)
	}

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  s.sitemapEntries(posts, works, time.Now()),
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		logger.Warn("encode sitemap: %v", err)
	}
}

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
}

func (s *Server) manifest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, webManifest{
		Name:            s.site.Name + " - AI-Powered Web Development",
		ShortName:       s.site.Name,
		Description:     s.site.Description,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      "#000000",
		Icons:           []manifestIcon{{Src: "/favicon.ico", Sizes: "any", Type: "image/x-icon"}},
	})
}

// Structured data types follow schema.org.

type ldThing struct {
	Type string `json:"@type"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type ldOrganization struct {
	Context     string   `json:"@context,omitempty"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Logo        any      `json:"logo,omitempty"`
	Description string   `json:"description,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

type ldArticle struct {
	Context          string          `json:"@context"`
	Type             string          `json:"@type"`
	Headline         string          `json:"headline"`
	Description      string          `json:"description,omitempty"`
	Image            string          `json:"image,omitempty"`
	DatePublished    string          `json:"datePublished,omitempty"`
	DateModified     string          `json:"dateModified,omitempty"`
	Author           *ldThing        `json:"author,omitempty"`
	Publisher        *ldOrganization `json:"publisher,omitempty"`
	MainEntityOfPage string          `json:"mainEntityOfPage"`
	Keywords         string          `json:"keywords,omitempty"`
	WordCount        int             `json:"wordCount,omitempty"`
}

func (s *Server) organization() ldOrganization {
	return ldOrganization{
		Context:     "https://schema.org",
		Type:        "Organization",
		Name:        s.site.Name,
		URL:         s.site.BaseURL,
		Logo:        publisherLogo,
		Description: s.site.Description,
		SameAs: []string{
			"https://github.com/vabank-dev",
			"https://linkedin.com/company/vabank-dev",
		},
	}
}

func (s *Server) publisher() *ldOrganization {
	return &ldOrganization{
		Type: "Organization",
		Name: s.site.Name,
		URL:  s.site.BaseURL,
		Logo: ldThing{Type: "ImageObject", URL: publisherLogo},
	}
}

func (s *Server) blogPosting(a *domain.Article) ldArticle {
	item := &a.Item
	ld := ldArticle{
		Context:          "https://schema.org",
		Type:             "BlogPosting",
		Headline:         item.Title,
		Description:      services.Excerpt(item.Body, metaDescriptionLength),
		DatePublished:    isoDate(item.PublishedAt),
		DateModified:     isoDate(item.PublishedAt),
		Publisher:        s.publisher(),
		MainEntityOfPage: s.site.BaseURL + item.Path(),
		Keywords:         strings.Join(item.AllTags(), ", "),
		WordCount:        a.WordCount,
	}
	if a.ImageURL != services.PlaceholderImage {
		ld.Image = a.ImageURL
	}
	if item.Author != "" {
		ld.Author = &ldThing{Type: "Person", Name: item.Author}
	} else {
		ld.Author = &ldThing{Type: "Organization", Name: s.site.Name, URL: s.site.BaseURL}
	}
	return ld
}

func (s *Server) creativeWork(a *domain.Article) ldArticle {
	item := &a.Item
	ld := ldArticle{
		Context:          "https://schema.org",
		Type:             "CreativeWork",
		Headline:         item.Title,
		Description:      item.Description,
		DatePublished:    isoDate(item.CreatedAt),
		DateModified:     isoDate(item.LastUpdated),
		Author:           &ldThing{Type: "Organization", Name: s.site.Name, URL: s.site.BaseURL},
		MainEntityOfPage: s.site.BaseURL + item.Path(),
		Keywords:         strings.Join(item.TechTags, ", "),
	}
	if a.ImageURL != services.PlaceholderImage {
		ld.Image = a.ImageURL
	}
	return ld
}

func isoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
