package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/fishing-report-dashboard/internal/dashboard"
	"github.com/couchcryptid/fishing-report-dashboard/internal/render"
)

// FallbackHeader is set on report responses served from the sample dataset.
const FallbackHeader = "X-Dashboard-Fallback"

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Dashboard is the page builder behind the HTTP routes.
type Dashboard interface {
	ReadinessChecker
	Load(ctx context.Context) dashboard.Loaded
	Build(ctx context.Context, prev render.Charts) render.Page
}

// Server exposes the dashboard page, its JSON API, and health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	dash       Dashboard
	logger     *slog.Logger
}

// NewServer creates an HTTP server with all dashboard routes.
func NewServer(addr string, dash Dashboard, logger *slog.Logger) *Server {
	router := chi.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		dash:   dash,
		logger: logger,
	}

	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/", s.handlePage)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/reports", s.handleReports)
	})
	router.Get("/healthz", s.handleHealth)
	router.Get("/readyz", s.handleReady)
	router.Handle("/metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// Each page view starts from fresh chart handles; nothing is shared between
// requests.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := s.dash.Build(r.Context(), render.Charts{})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if page.Fallback {
		w.Header().Set(FallbackHeader, "true")
	}
	if err := render.WritePage(w, page); err != nil {
		loggerFrom(r.Context(), s.logger).Error("write dashboard page failed", "error", err)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	page := s.dash.Build(r.Context(), render.Charts{})
	if page.Fallback {
		w.Header().Set(FallbackHeader, "true")
	}
	s.writeJSON(r.Context(), w, http.StatusOK, page)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	loaded := s.dash.Load(r.Context())
	if loaded.Fallback {
		w.Header().Set(FallbackHeader, "true")
	}
	s.writeJSON(r.Context(), w, http.StatusOK, loaded.Document)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dash.CheckReadiness(ctx); err != nil {
		loggerFrom(r.Context(), s.logger).Warn("readiness check failed", "error", err)
		s.writeJSON(r.Context(), w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		loggerFrom(ctx, s.logger).Error("encode response failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
