// Package server exposes the diagram pipeline over HTTP.
//
// Routes:
//
//	GET  /health                  liveness probe
//	GET  /v1/diagram.{format}     render on demand from query parameters
//	POST /v1/diagrams             render and store, returns an id
//	GET  /v1/diagrams/{id}        fetch a stored diagram
//
// Diagrams are rendered by a [pipeline.Runner] and stored in its cache, so
// several server instances sharing a Redis or Mongo backend serve the
// same ids.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hemicycle/pkg/cache"
	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

const (
	// DefaultMaxSeats bounds the chambers a request may ask for.
	DefaultMaxSeats = 5000

	// DefaultDiagramTTL is how long stored diagrams are kept.
	DefaultDiagramTTL = 30 * 24 * time.Hour
)

// Config configures a [Server].
type Config struct {
	// Cache stores artifacts and diagrams. Nil disables both caching and
	// POST /v1/diagrams.
	Cache cache.Cache

	Logger *log.Logger

	// Defaults supplies angle, radius ratio, allocation method and width
	// for requests that leave them out.
	Defaults pipeline.Options

	MaxSeats    int
	DiagramTTL  time.Duration
	ArtifactTTL time.Duration // 0 means [pipeline.ArtifactTTL]
}

// Server holds the HTTP handlers.
type Server struct {
	runner   *pipeline.Runner
	store    cache.Cache
	keyer    cache.Keyer
	logger   *log.Logger
	defaults pipeline.Options
	maxSeats int
	ttl      time.Duration
}

// New creates a server. Keys are scoped with "api:" so that server entries
// can be told apart from CLI entries in a shared store.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.MaxSeats <= 0 {
		cfg.MaxSeats = DefaultMaxSeats
	}
	if cfg.DiagramTTL <= 0 {
		cfg.DiagramTTL = DefaultDiagramTTL
	}
	keyer := cache.NewScopedKeyer(nil, "api:")
	runner := pipeline.NewRunner(cfg.Cache, keyer, cfg.Logger)
	if cfg.ArtifactTTL > 0 {
		runner.TTL = cfg.ArtifactTTL
	}
	return &Server{
		runner:   runner,
		store:    cfg.Cache,
		keyer:    keyer,
		logger:   cfg.Logger,
		defaults: cfg.Defaults,
		maxSeats: cfg.MaxSeats,
		ttl:      cfg.DiagramTTL,
	}
}

// Routes returns the router with every route configured.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(s.requestIDHeader)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/diagram.{format}", s.handleRender)
		r.Route("/diagrams", func(r chi.Router) {
			r.Post("/", s.handleCreateDiagram)
			r.Get("/{id}", s.handleGetDiagram)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}

// observe reports every request to the HTTP hooks with its route pattern
// and final status.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

func (s *Server) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r)
	})
}
