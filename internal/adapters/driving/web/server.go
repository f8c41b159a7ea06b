package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Server is the site's HTTP server.
type Server struct {
	ports  *Ports
	site   domain.SiteSettings
	config domain.ServerSettings
	router chi.Router
}

// NewServer creates a server and registers its routes.
func NewServer(ports *Ports, site domain.SiteSettings, config domain.ServerSettings) *Server {
	s := &Server{
		ports:  ports,
		site:   site,
		config: config,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(middleware.Compress(5))

	r.Get("/health", s.health)
	r.Get("/robots.txt", s.robots)
	r.Get("/sitemap.xml", s.sitemap)
	r.Get("/manifest.webmanifest", s.manifest)

	r.Get("/", s.home)
	r.Get("/blog", s.listingPage(domain.KindPost))
	r.Get("/blog/{slug}", s.postPage)
	r.Get("/our-work", s.listingPage(domain.KindWork))
	r.Get("/our-work/practices", s.listingPage(domain.KindPractice))
	r.Get("/our-work/{slug}", s.workPage)

	r.Route("/api", func(r chi.Router) {
		if len(s.config.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: s.config.CORSOrigins,
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
		}
		r.Get("/listings/{kind}", s.apiListing)
		r.Get("/articles/{kind}/{slug}", s.apiArticle)
	})

	r.NotFound(s.notFound)
	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.ports.Validate(); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("web server listening on %s", s.config.Addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Debug("%s %s %d %dB %v [%s]",
			r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(),
			time.Since(start), middleware.GetReqID(r.Context()))
	})
}
