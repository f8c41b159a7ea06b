package web

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/vabank-dev/vabank/internal/adapters/driving/present"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
)

// initialStack is how many tech tags show before "Show all".
const initialStack = 6

// metaDescriptionLength matches what search engines display.
const metaDescriptionLength = 160

func (s *Server) homePage(featured, posts, works []domain.ContentItem) g.Node {
	return s.layout(
		pageMeta{
			Title:          s.site.Name + " - AI-Powered Web Development",
			Path:           "/",
			StructuredData: s.organization(),
		},
		h.Section(
			h.Class("hero"),
			h.H1(g.Text(s.site.Name)),
			h.P(g.Text(s.site.Description)),
		),
		g.If(len(featured) > 0, h.Section(
			h.Class("featured"),
			h.H2(g.Text("Featured")),
			cardGrid(featured),
		)),
		h.Section(
			h.H2(g.Text("Our Work")),
			cardGrid(works),
			h.A(h.Href("/our-work"), g.Text("View all projects")),
		),
		h.Section(
			h.H2(g.Text("Latest from the blog")),
			cardGrid(posts),
			h.A(h.Href("/blog"), g.Text("View all articles")),
		),
	)
}

func (s *Server) listingDocument(kind domain.ContentKind, q domain.ListingQuery, view domain.ListingView[domain.ContentItem]) g.Node {
	path := listingPath(kind)

	// Filtered views are not canonical pages.
	filtered := q.Category != "" && q.Category != domain.CategoryAll || q.Search != ""

	return s.layout(
		pageMeta{
			Title:       fmt.Sprintf("%s | %s", kind.Description(), s.site.Name),
			Description: listingIntro(kind),
			Path:        path,
			NoIndex:     filtered,
		},
		h.Section(
			h.Class("listing"),
			h.H1(g.Text(kind.Description())),
			h.P(h.Class("intro"), g.Text(listingIntro(kind))),
			categoryTabs(path, view),
			searchForm(path, view),
			g.If(len(view.Featured) > 0, h.Div(
				h.Class("featured"),
				h.H2(g.Text("Featured")),
				cardGrid(view.Featured),
			)),
			listingBody(kind, path, q, view),
		),
	)
}

func listingIntro(kind domain.ContentKind) string {
	switch kind {
	case domain.KindPost:
		return "Insights on web development, AI integration and digital transformation."
	case domain.KindPractice:
		return "Internal tools, starters and experiments we build and share."
	default:
		return "Selected client projects, from replatforming to AI-driven products."
	}
}

func categoryTabs(path string, view domain.ListingView[domain.ContentItem]) g.Node {
	if len(view.Categories) == 0 {
		return nil
	}
	return h.Nav(
		h.Class("categories"),
		g.Map(view.Categories, func(c domain.Category) g.Node {
			class := "tab"
			if c.ID == view.ActiveCategory {
				class = "tab active"
			}
			label := c.Label
			if c.ID != domain.CategoryAll {
				label = services.TitleCase(label)
			}
			// Changing category keeps the query and resets the window.
			href := queryURL(path, domain.ListingQuery{Category: c.ID, Search: view.SearchQuery})
			return h.A(h.Href(href), h.Class(class), g.Text(label))
		}),
	)
}

func searchForm(path string, view domain.ListingView[domain.ContentItem]) g.Node {
	return h.Form(
		h.Class("search"),
		h.Method("get"),
		h.Action(path),
		h.Input(h.Type("search"), h.Name("q"), h.Value(view.SearchQuery), h.Placeholder("Search...")),
		g.If(view.ActiveCategory != "" && view.ActiveCategory != domain.CategoryAll,
			h.Input(h.Type("hidden"), h.Name("category"), h.Value(view.ActiveCategory))),
		h.Button(h.Type("submit"), g.Text("Search")),
	)
}

func listingBody(kind domain.ContentKind, path string, q domain.ListingQuery, view domain.ListingView[domain.ContentItem]) g.Node {
	if view.IsEmpty {
		msg := fmt.Sprintf("No %s found.", kind.Plural())
		if view.SearchQuery != "" {
			msg = fmt.Sprintf("No %s match %q.", kind.Plural(), view.SearchQuery)
		}
		return h.Div(
			h.Class("empty"),
			h.P(g.Text(msg)),
			h.A(h.Href(path), g.Text("Reset filters")),
		)
	}

	next := q
	next.LoadMore++
	return g.Group([]g.Node{
		h.P(h.Class("count"), g.Textf("Showing %d of %d", len(view.VisibleItems), view.TotalMatching)),
		cardGrid(view.VisibleItems),
		g.If(view.HasMore, h.A(h.Class("load-more"), h.Href(queryURL(path, next)), g.Text("Load more"))),
	})
}

func cardGrid(items []domain.ContentItem) g.Node {
	return h.Div(
		h.Class("grid"),
		g.Map(items, func(it domain.ContentItem) g.Node { return card(&it) }),
	)
}

func card(it *domain.ContentItem) g.Node {
	return h.Article(
		h.Class("card"),
		h.H3(h.A(h.Href(it.Path()), g.Text(it.Title))),
		h.P(h.Class("meta"), g.Text(cardMeta(it))),
		h.P(g.Text(cardExcerpt(it))),
		tagList(it.AllTags(), len(it.AllTags())),
	)
}

func cardMeta(it *domain.ContentItem) string {
	var parts []string
	if d := domain.DisplayDate(it.SortTime()); d != "" {
		parts = append(parts, d)
	}
	if c := it.PrimaryCategory(); c != nil {
		parts = append(parts, services.TitleCase(c.Label))
	}
	if it.Kind == domain.KindPost {
		minutes := it.ReadingTime
		if minutes <= 0 {
			minutes = services.ReadingMinutes(it.Body)
		}
		if minutes > 0 {
			parts = append(parts, fmt.Sprintf("%d min read", minutes))
		}
	}
	if it.ClientName != "" {
		parts = append(parts, it.ClientName)
	}
	return strings.Join(parts, " · ")
}

func cardExcerpt(it *domain.ContentItem) string {
	if it.Description != "" {
		return it.Description
	}
	return services.Excerpt(it.Body, services.DefaultExcerptLength)
}

func tagList(tags []string, visible int) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return h.Ul(
		h.Class("tags"),
		g.Map(tags[:min(visible, len(tags))], func(t string) g.Node {
			return h.Li(g.Text(t))
		}),
	)
}

func (s *Server) articleDocument(a *domain.Article, showAllStack bool) g.Node {
	item := &a.Item
	meta := pageMeta{
		Title:       fmt.Sprintf("%s | %s", item.Title, s.site.Name),
		Description: s.metaDescription(a),
		Path:        item.Path(),
		Type:        "article",
		NoIndex:     item.NoIndex,
	}
	if a.ImageURL != "" && a.ImageURL != services.PlaceholderImage {
		meta.Image = a.ImageURL
	}
	if item.Kind == domain.KindPost {
		meta.StructuredData = s.blogPosting(a)
	} else {
		meta.StructuredData = s.creativeWork(a)
	}

	return s.layout(meta,
		h.Article(
			h.Class("article"),
			h.A(h.Class("back"), h.Href(listingPath(item.Kind)), g.Textf("Back to %s", item.Kind.Description())),
			h.H1(g.Text(item.Title)),
			g.If(present.Byline(a) != "", h.P(h.Class("byline"), g.Text(present.Byline(a)))),
			g.If(meta.Image != "", h.Img(h.Src(meta.Image), h.Alt(altFor(item)), h.Class("hero-image"))),
			projectDetails(item, showAllStack),
			tableOfContents(a.TOC),
			h.Div(h.Class("prose"), instructionNodes(a.Instructions)),
		),
	)
}

func altFor(item *domain.ContentItem) string {
	if item.MainImage != nil && item.MainImage.Alt != "" {
		return item.MainImage.Alt
	}
	return item.Title
}

// projectDetails shows the description, links, progress and tech stack of
// works and practices.
func projectDetails(item *domain.ContentItem, showAllStack bool) g.Node {
	if item.Kind == domain.KindPost {
		return nil
	}

	total := len(item.TechTags)
	visible := min(initialStack, total)
	if showAllStack {
		visible = total
	}
	toggled := services.Toggle(visible, initialStack, total)

	var toggle g.Node
	if total > initialStack {
		href, label := item.Path()+"?stack=all", fmt.Sprintf("Show all (%d)", total)
		if toggled < visible {
			href, label = item.Path(), "Show less"
		}
		toggle = h.A(h.Class("toggle"), h.Href(href), g.Text(label))
	}

	return h.Section(
		h.Class("project"),
		g.If(item.Description != "", h.P(h.Class("lead"), g.Text(item.Description))),
		g.If(item.URL != "", h.A(h.Href(item.URL), h.Rel("noopener"), h.Target("_blank"), g.Text("Visit site"))),
		g.If(item.RepositoryURL != "", h.A(h.Href(item.RepositoryURL), h.Rel("noopener"), h.Target("_blank"), g.Text("Repository"))),
		g.If(item.Kind == domain.KindPractice && item.Progress > 0, h.P(h.Class("progress"), g.Textf("%d%% complete", item.Progress))),
		g.If(total > 0, h.Div(
			h.Class("stack"),
			h.H2(g.Text("Tech stack")),
			tagList(item.TechTags, visible),
			toggle,
		)),
	)
}

func tableOfContents(toc []domain.TOCEntry) g.Node {
	if len(toc) < 2 {
		return nil
	}
	return h.Nav(
		h.Class("toc"),
		h.H2(g.Text("Contents")),
		h.Ul(g.Map(toc, func(e domain.TOCEntry) g.Node {
			return h.Li(h.A(h.Href("#"+e.ID), g.Text(e.Text)))
		})),
	)
}

func (s *Server) metaDescription(a *domain.Article) string {
	if a.Item.Kind != domain.KindPost && a.Item.Description != "" {
		return a.Item.Description
	}
	if d := services.Excerpt(a.Item.Body, metaDescriptionLength); d != "" {
		return d
	}
	return s.site.Description
}
