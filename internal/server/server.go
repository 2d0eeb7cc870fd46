// Package server exposes the pipeline as a JSON API for the browser UI.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/draftforge/draftforge/internal/config"
	"github.com/draftforge/draftforge/internal/document"
	"github.com/draftforge/draftforge/internal/llm"
)

// Server wires the extractor, the candidate generator and the provider
// adapter behind HTTP handlers.
type Server struct {
	cfg       *config.Config
	extractor *document.Extractor
	adapter   *llm.Adapter
	logger    *slog.Logger
}

func New(cfg *config.Config, extractor *document.Extractor, adapter *llm.Adapter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		extractor: extractor,
		adapter:   adapter,
		logger:    logger,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Post("/send", s.handleSend)
		r.Get("/providers", s.handleProviders)
		r.Post("/providers/test", s.handleTestProviders)
		r.Get("/models", s.handleModels)
	})

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
