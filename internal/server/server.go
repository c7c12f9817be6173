// Package server exposes the layout engine over HTTP.
//
// The API is a thin JSON surface over the pipeline and the document store:
//
//	POST   /v1/layouts            compute a layout from axes (stateless)
//	POST   /v1/documents          compute and persist a layout document
//	GET    /v1/documents          list saved documents
//	GET    /v1/documents/{id}     fetch a saved document
//	DELETE /v1/documents/{id}     delete a saved document
//	GET    /healthz               liveness probe
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mshaler/isogrid/pkg/pipeline"
	"github.com/mshaler/isogrid/pkg/store"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// RequestTimeout bounds each request. Zero means 30 seconds.
	RequestTimeout time.Duration
}

// Server is the HTTP API server.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
	http   *http.Server
}

// New creates a server wired to the given pipeline runner and document store.
func New(cfg Config, runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{cfg: cfg, runner: runner, store: st, logger: logger}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleComputeLayout)
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", s.handleCreateDocument)
			r.Get("/", s.handleListDocuments)
			r.Get("/{id}", s.handleGetDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
		})
	})
	return r
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting API server", "addr", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.http.Shutdown(ctx)
}
