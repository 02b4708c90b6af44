// Package api exposes the HTTP interface for the harvesting engine.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentboard/harvester/internal/metrics"
	"github.com/talentboard/harvester/internal/scrape"
)

// Server wires HTTP handlers to the run registry.
type Server struct {
	router   chi.Router
	registry *scrape.Registry
	logger   *zap.Logger
}

// Options tunes the HTTP surface.
type Options struct {
	// APIKey, when non-empty, gates every route behind an X-API-Key check.
	APIKey string
	// RequestTimeout bounds handler execution; zero means 60s.
	RequestTimeout time.Duration
}

// NewServer constructs a Server with middleware and routes.
func NewServer(registry *scrape.Registry, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	s := &Server{
		registry: registry,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(timeoutMiddleware(opts.RequestTimeout))
	if opts.APIKey != "" {
		r.Use(apiKeyMiddleware(opts.APIKey))
	}

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/scraper", func(r chi.Router) {
		r.Post("/start", s.startRun)
		r.Get("/progress", s.getProgress)
		r.Post("/stop", s.stopRun)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// startRun validates the submitted run configuration and launches a run.
// A second start while one is active is a conflict, not an error to retry.
func (s *Server) startRun(w http.ResponseWriter, r *http.Request) {
	var cfg scrape.RunConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.registry.Start(cfg); err != nil {
		if errors.Is(err, scrape.ErrAlreadyRunning) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Info("run accepted",
		zap.Strings("locations", cfg.Locations),
		zap.Int("content_types", len(cfg.ContentTypes)),
	)
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "harvest run started"})
}

func (s *Server) getProgress(w http.ResponseWriter, _ *http.Request) {
	progress, _ := s.registry.Progress()
	writeJSON(w, http.StatusOK, progress)
}

// stopRun requests cancellation. Stopping an idle engine succeeds so
// clients need not race the run's natural completion.
func (s *Server) stopRun(w http.ResponseWriter, _ *http.Request) {
	if !s.registry.IsActive() {
		writeJSON(w, http.StatusOK, map[string]string{"message": "no active run"})
		return
	}
	s.registry.Stop()
	writeJSON(w, http.StatusOK, map[string]string{"message": "stop requested"})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("error", rec))
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

func apiKeyMiddleware(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				key = r.URL.Query().Get("api_key")
			}
			if key != expected {
				writeError(w, http.StatusForbidden, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
