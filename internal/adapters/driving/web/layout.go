package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/logger"
)

// pageMeta describes the <head> of a page.
type pageMeta struct {
	Title       string
	Description string
	Path        string
	Image       string
	Type        string
	NoIndex     bool

	// StructuredData is rendered as JSON-LD when set.
	StructuredData any
}

func (s *Server) layout(meta pageMeta, content ...g.Node) g.Node {
	if meta.Title == "" {
		meta.Title = s.site.Name
	}
	if meta.Description == "" {
		meta.Description = s.site.Description
	}
	if meta.Type == "" {
		meta.Type = "website"
	}
	canonical := s.site.BaseURL + meta.Path

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(meta.Title)),
				h.Meta(h.Name("description"), h.Content(meta.Description)),
				g.If(meta.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
				h.Link(h.Rel("canonical"), h.Href(canonical)),
				h.Link(h.Rel("manifest"), h.Href("/manifest.webmanifest")),

				h.Meta(g.Attr("property", "og:title"), h.Content(meta.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(meta.Description)),
				h.Meta(g.Attr("property", "og:type"), h.Content(meta.Type)),
				h.Meta(g.Attr("property", "og:url"), h.Content(canonical)),
				g.If(meta.Image != "", h.Meta(g.Attr("property", "og:image"), h.Content(meta.Image))),

				jsonLD(meta.StructuredData),
			),
			h.Body(
				s.topbar(),
				h.Main(g.Group(content)),
				s.footer(),
			),
		),
	})
}

func (s *Server) topbar() g.Node {
	return h.Header(
		h.Class("topbar"),
		h.A(h.Href("/"), h.Class("brand"), g.Text(s.site.Name)),
		h.Nav(
			h.A(h.Href("/blog"), g.Text(domain.KindPost.Description())),
			h.A(h.Href("/our-work"), g.Text(domain.KindWork.Description())),
			h.A(h.Href("/our-work/practices"), g.Text(domain.KindPractice.Description())),
		),
	)
}

func (s *Server) footer() g.Node {
	return h.Footer(
		h.Class("footer"),
		h.P(g.Text(s.site.Description)),
	)
}

// jsonLD renders v as an application/ld+json script. encoding/json escapes
// '<' so the payload cannot close the script element.
func jsonLD(v any) g.Node {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		logger.Warn("encode structured data: %v", err)
		return nil
	}
	return h.Script(h.Type("application/ld+json"), g.Raw(string(b)))
}

func (s *Server) errorDocument(status int) g.Node {
	title, message := "Something went wrong", "Please try again in a moment."
	if status == http.StatusNotFound {
		title, message = "Page not found", "The page you are looking for does not exist."
	} else if status == http.StatusBadRequest {
		title, message = "Bad request", "The address could not be understood."
	}

	return s.layout(
		pageMeta{Title: fmt.Sprintf("%s | %s", title, s.site.Name), NoIndex: true},
		h.Section(
			h.Class("error"),
			h.H1(g.Text(title)),
			h.P(g.Text(message)),
			h.A(h.Href("/"), g.Text("Back to home")),
		),
	)
}

func listingPath(kind domain.ContentKind) string {
	switch kind {
	case domain.KindPost:
		return "/blog"
	case domain.KindPractice:
		return "/our-work/practices"
	default:
		return "/our-work"
	}
}

// queryURL encodes a listing query onto path, omitting defaults.
func queryURL(path string, q domain.ListingQuery) string {
	v := url.Values{}
	if q.Category != "" && q.Category != domain.CategoryAll {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.LoadMore > 0 {
		v.Set("more", strconv.Itoa(q.LoadMore))
	}
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
