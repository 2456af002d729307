// Package api implements the HTTP service: backend conversion, DOT
// rendering, sub-path cost enumeration, and a stored-graph CRUD surface.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/FilippoRanza/simplegraph/pkg/cache"
	"github.com/FilippoRanza/simplegraph/pkg/store"
)

// renderTTL bounds how long rendered artifacts stay cached.
const renderTTL = 24 * time.Hour

// Server holds the router and its backing services.
type Server struct {
	router chi.Router
	store  store.Store
	cache  cache.Cache
	logger *log.Logger
}

// NewServer wires the routes. The store backs /v1/graphs, the cache
// backs /v1/render; pass a MemoryStore and NullCache to run without
// external services.
func NewServer(st store.Store, ca cache.Cache, logger *log.Logger) *Server {
	s := &Server{
		store:  st,
		cache:  ca,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/convert", s.handleConvert)
		r.Post("/render", s.handleRender)
		r.Post("/cost", s.handleCost)

		r.Route("/graphs", func(r chi.Router) {
			r.Post("/", s.handleCreateGraph)
			r.Get("/", s.handleListGraphs)
			r.Get("/{id}", s.handleGetGraph)
			r.Delete("/{id}", s.handleDeleteGraph)
		})
	})
	r.Get("/healthz", s.handleHealth)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logRequests logs method, path, status and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}
