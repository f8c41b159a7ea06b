package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/services"
	"github.com/vabank-dev/vabank/internal/logger"
)

// maxLoadMore caps the load-more count accepted from a URL.
const maxLoadMore = 50

// homeLatest is how many posts and works the home page previews.
const homeLatest = 3

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	posts, err := s.ports.Listing.Evaluate(r.Context(), domain.KindPost, domain.ListingQuery{})
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	works, err := s.ports.Listing.Evaluate(r.Context(), domain.KindWork, domain.ListingQuery{})
	if err != nil {
		s.pageError(w, r, err)
		return
	}

	s.render(w, http.StatusOK, s.homePage(posts.Featured, head(posts.VisibleItems, homeLatest), head(works.VisibleItems, homeLatest)))
}

func (s *Server) listingPage(kind domain.ContentKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := listingQuery(r)
		view, err := s.ports.Listing.Evaluate(r.Context(), kind, q)
		if err != nil {
			s.pageError(w, r, err)
			return
		}
		s.render(w, http.StatusOK, s.listingDocument(kind, q, view))
	}
}

func (s *Server) postPage(w http.ResponseWriter, r *http.Request) {
	item, err := s.ports.Content.Get(r.Context(), domain.KindPost, chi.URLParam(r, "slug"))
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.articlePage(w, r, item)
}

// workPage serves works and, when no work has the slug, practices.
func (s *Server) workPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	item, err := s.ports.Content.Get(r.Context(), domain.KindWork, slug)
	if errors.Is(err, domain.ErrNotFound) {
		item, err = s.ports.Content.Get(r.Context(), domain.KindPractice, slug)
	}
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	s.articlePage(w, r, item)
}

func (s *Server) articlePage(w http.ResponseWriter, r *http.Request, item *domain.ContentItem) {
	article, err := s.ports.Render.Article(*item)
	if err != nil {
		s.pageError(w, r, err)
		return
	}
	showAllStack := r.URL.Query().Get("stack") == "all"
	s.render(w, http.StatusOK, s.articleDocument(article, showAllStack))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.pageError(w, r, domain.ErrNotFound)
}

// apiItem is the JSON shape of a listing entry.
type apiItem struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Path        string   `json:"path"`
	Date        string   `json:"date,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

// apiListing is the JSON shape of a listing view.
type apiListing struct {
	Kind           string            `json:"kind"`
	Items          []apiItem         `json:"items"`
	Featured       []apiItem         `json:"featured,omitempty"`
	Categories     []domain.Category `json:"categories"`
	ActiveCategory string            `json:"activeCategory"`
	SearchQuery    string            `json:"searchQuery"`
	VisibleCount   int               `json:"visibleCount"`
	TotalMatching  int               `json:"totalMatching"`
	HasMore        bool              `json:"hasMore"`
	IsEmpty        bool              `json:"isEmpty"`
	NextPage       string            `json:"nextPage,omitempty"`
}

func (s *Server) apiListing(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseContentKind(chi.URLParam(r, "kind"))
	if err != nil {
		apiError(w, err)
		return
	}

	q := listingQuery(r)
	view, err := s.ports.Listing.Evaluate(r.Context(), kind, q)
	if err != nil {
		apiError(w, err)
		return
	}

	resp := apiListing{
		Kind:           kind.Plural(),
		Items:          apiItems(view.VisibleItems),
		Categories:     view.Categories,
		ActiveCategory: view.ActiveCategory,
		SearchQuery:    view.SearchQuery,
		VisibleCount:   view.VisibleCount,
		TotalMatching:  view.TotalMatching,
		HasMore:        view.HasMore,
		IsEmpty:        view.IsEmpty,
	}
	if len(view.Featured) > 0 {
		resp.Featured = apiItems(view.Featured)
	}
	if view.HasMore {
		next := q
		next.LoadMore++
		resp.NextPage = queryURL(r.URL.Path, next)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) apiArticle(w http.ResponseWriter, r *http.Request) {
	kind, err := domain.ParseContentKind(chi.URLParam(r, "kind"))
	if err != nil {
		apiError(w, err)
		return
	}
	item, err := s.ports.Content.Get(r.Context(), kind, chi.URLParam(r, "slug"))
	if err != nil {
		apiError(w, err)
		return
	}
	article, err := s.ports.Render.Article(*item)
	if err != nil {
		apiError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func apiItems(items []domain.ContentItem) []apiItem {
	out := make([]apiItem, 0, len(items))
	for i := range items {
		it := &items[i]
		entry := apiItem{
			ID:          it.ID,
			Kind:        string(it.Kind),
			Slug:        it.Slug,
			Title:       it.Title,
			Description: cardExcerpt(it),
			Path:        it.Path(),
			Date:        domain.DisplayDate(it.SortTime()),
			Tags:        it.AllTags(),
			Featured:    it.Featured,
		}
		for _, c := range it.Categories {
			entry.Categories = append(entry.Categories, services.TitleCase(c.Label))
		}
		out = append(out, entry)
	}
	return out
}

// listingQuery reads category, q and more from the URL.
func listingQuery(r *http.Request) domain.ListingQuery {
	v := r.URL.Query()
	more, err := strconv.Atoi(v.Get("more"))
	if err != nil || more < 0 {
		more = 0
	}
	return domain.ListingQuery{
		Category: v.Get("category"),
		Search:   v.Get("q"),
		LoadMore: min(more, maxLoadMore),
	}
}

func head(items []domain.ContentItem, n int) []domain.ContentItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupportedKind), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) pageError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("%s %s: %v", r.Method, r.URL.Path, err)
	}
	s.render(w, status, s.errorDocument(status))
}

func (s *Server) render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		logger.Warn("render page: %v", err)
	}
}

func apiError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("api: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: %v", err)
	}
}
