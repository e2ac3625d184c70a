// Package http exposes a running simulation over HTTP: live statistics, the
// audit trail, tracker capabilities, and Prometheus metrics. It reads through
// the engine's accessor surface only and never writes game state.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// Source is the read-only view of an engine the server exposes. The root
// gridiron.Engine satisfies it.
type Source interface {
	Statistics() domain.GameStatistics
	AuditTrail() domain.AuditSnapshot
	PerformanceReport() domain.PerformanceReport
	TrackerCapabilities() domain.TrackerCapabilities
}

// NewHandler builds the HTTP handler. registry may be nil when metrics are
// not attached; /metrics then reports 404.
func NewHandler(src Source, registry *prometheus.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/stats", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, src.Statistics())
	})

	r.Get("/audit", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, src.AuditTrail())
	})

	r.Get("/perf", func(w http.ResponseWriter, _ *http.Request) {
		caps := src.TrackerCapabilities()
		if !caps.Performance {
			http.Error(w, "performance tracking not enabled", http.StatusNotFound)
			return
		}
		writeJSON(w, logger, src.PerformanceReport())
	})

	r.Get("/capabilities", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, src.TrackerCapabilities())
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "err", err)
	}
}
