// Package server exposes the wordplay functions over a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Gobd/wordplay/internal/config"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server routes the API. Create one with [New].
type Server struct {
	router  chi.Router
	logger  *slog.Logger
	metrics *metrics
	doc     *openapi3.T
	docJSON []byte
}

// New builds the router, metrics and OpenAPI document.
func New(logger *slog.Logger, version string) (*Server, error) {
	doc, err := Document(version)
	if err != nil {
		return nil, fmt.Errorf("build openapi document: %w", err)
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}

	s := &Server{
		router:  chi.NewRouter(),
		logger:  logger,
		metrics: newMetrics(),
		doc:     doc,
		docJSON: docJSON,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(s.metrics.middleware)
	r.Use(middleware.Recoverer)

	r.Post("/rot13", s.handleRot13)
	r.Post("/correct", s.handleCorrect)
	r.Post("/robber", s.handleRobber)
	r.Post("/inflect", s.handleInflect)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/translate", s.handleTranslate)

	r.Get("/docs.json", s.handleDocs)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Doc returns the OpenAPI document served at /docs.json.
func (s *Server) Doc() *openapi3.T {
	return s.doc
}

func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.docJSON)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WarnContext(r.Context(), "write response", "request_id", RequestID(r.Context()), "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	s.logger.DebugContext(r.Context(), "request rejected",
		"request_id", RequestID(r.Context()), "status", code, "error", err)
	s.writeJSON(w, r, code, ErrorResponse{Error: err.Error()})
}

// Run serves h on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg config.ServerConfig, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout+time.Second)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
