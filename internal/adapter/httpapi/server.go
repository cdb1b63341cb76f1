// Package httpapi exposes the overlay endpoint plus health and metrics routes.
package httpapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stormscope/warning-overlay/internal/observability"
)

// Static explanatory pages, served verbatim for error statuses. Internal
// error detail stays in the logs; clients only ever see these.
var (
	//go:embed pages/bad-request.html
	badRequestPage []byte
	//go:embed pages/not-found.html
	notFoundPage []byte
	//go:embed pages/server-error.html
	serverErrorPage []byte
)

// OverlayBuilder runs the retrieval-and-rendering pipeline for a date range.
type OverlayBuilder interface {
	BuildOverlay(ctx context.Context, dates domain.DateRange) ([]byte, error)
}

// Server exposes the overlay, health, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	builder    OverlayBuilder
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with /warnings.txt, /healthz, and /metrics
// routes. Unmatched paths get the static 404 page.
func NewServer(addr string, builder OverlayBuilder, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     mux,
			ReadTimeout: 10 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		builder: builder,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /warnings.txt", s.handleWarnings)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", s.handleNotFound)

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

// handleWarnings answers a date range with the rendered overlay. Parameter
// validation happens before any network access, so a bad request never costs
// an archive fetch.
func (s *Server) handleWarnings(w http.ResponseWriter, r *http.Request) {
	params := parseParams("?" + r.URL.RawQuery)

	dates, err := domain.ParseDateRange(params)
	if err != nil {
		s.respondError(w, err)
		return
	}

	body, err := s.builder.BuildOverlay(r.Context(), dates)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.countStatus(http.StatusOK)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck // nothing useful to do about a failed body write
}

// respondError maps domain errors onto HTTP statuses. BadRequest and NotFound
// get their static pages; everything else is logged with full detail and
// collapses to the generic 500 page.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		s.logger.Debug("bad request", "error", err)
		s.servePage(w, http.StatusBadRequest, badRequestPage)
	case errors.Is(err, domain.ErrNotFound):
		s.servePage(w, http.StatusNotFound, notFoundPage)
	default:
		s.logger.Error("request failed", "error", err)
		s.servePage(w, http.StatusInternalServerError, serverErrorPage)
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.servePage(w, http.StatusNotFound, notFoundPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.countStatus(http.StatusOK)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"}) //nolint:errcheck // best-effort health response
}

func (s *Server) servePage(w http.ResponseWriter, status int, page []byte) {
	s.countStatus(status)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(page) //nolint:errcheck // static page write
}

func (s *Server) countStatus(status int) {
	s.metrics.RequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}
