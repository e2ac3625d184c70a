package gridiron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gridironlabs/gridiron/internal/metrics"
	"github.com/gridironlabs/gridiron/internal/runtime"
	"github.com/gridironlabs/gridiron/internal/track"
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Engine is the high-level entry point for the library. It wraps the internal
// pipeline and provides a simplified API for consumers: process plays, read
// statistics, export the audit trail.
//
// One Engine resolves plays for one game. Many engines may run concurrently,
// but a single engine (and its GameState) has one writer at a time.
type Engine struct {
	gameID  string
	tracker ports.Tracker
	rand    ports.RandSource
	metrics *metrics.Metrics
	logger  *slog.Logger
	hooks   runtime.Hooks
	now     func() time.Time

	pipeline *runtime.Pipeline
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets the engine's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTracker replaces the default full tracker. Pass track.NewReduced() for
// the counts-only tier, or any ports.Tracker implementation.
func WithTracker(t ports.Tracker) Option {
	return func(e *Engine) {
		e.tracker = t
	}
}

// WithSeed makes the engine's randomized procedures (kickoff returns, onside
// recoveries) fully reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rand = ports.NewSeededRand(seed)
	}
}

// WithRand injects a randomness source directly.
func WithRand(r ports.RandSource) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithMetrics attaches Prometheus collectors to the pipeline.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithHooks registers observability callbacks.
func WithHooks(h runtime.Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithClock injects the timestamp source used for transition provenance.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine for one game.
func New(gameID string, opts ...Option) *Engine {
	e := &Engine{
		gameID: gameID,
		rand:   ports.NewSeededRand(time.Now().UnixNano()),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.tracker == nil {
		e.tracker = track.NewFull(gameID, e.logger)
	}

	e.pipeline = runtime.New(runtime.Config{
		Tracker: e.tracker,
		Rand:    e.rand,
		Metrics: e.metrics,
		Logger:  e.logger,
		Hooks:   e.hooks,
		Now:     e.now,
	})
	return e
}

// ProcessPlay resolves one play against the game state. On success the state
// has been mutated; on any failure it is untouched. The result carries the
// calculated transition, any violations, and a one-line summary.
func (e *Engine) ProcessPlay(play domain.PlayResult, state *domain.GameState, possessingTeamID string) domain.PipelineResult {
	return e.pipeline.Process(play, state, possessingTeamID)
}

// RecordEvent appends a free-text entry to the audit trail (quarter breaks,
// coin toss, weather notes).
func (e *Engine) RecordEvent(text string) {
	e.tracker.RecordEvent(text)
}

// Statistics returns the tracker's running summary.
func (e *Engine) Statistics() domain.GameStatistics {
	return e.tracker.Statistics()
}

// AuditTrail returns a value copy of the append-only audit trail.
func (e *Engine) AuditTrail() domain.AuditSnapshot {
	return e.tracker.AuditTrail()
}

// PerformanceReport returns profiling data when the tracker declares the
// Performance capability, a zero report otherwise.
func (e *Engine) PerformanceReport() domain.PerformanceReport {
	return e.tracker.PerformanceReport()
}

// TrackerCapabilities declares what the attached tracker records.
func (e *Engine) TrackerCapabilities() domain.TrackerCapabilities {
	return e.tracker.Capabilities()
}

// MetricsRegistry exposes the Prometheus registry when metrics are attached,
// or nil.
func (e *Engine) MetricsRegistry() *prometheus.Registry {
	if e.metrics == nil {
		return nil
	}
	return e.metrics.Registry()
}

// ExportAudit writes the current audit snapshot to a sink.
func (e *Engine) ExportAudit(ctx context.Context, sink ports.AuditSink) error {
	snap := e.AuditTrail()
	if snap.GameID == "" {
		snap.GameID = e.gameID
	}
	if err := sink.Save(ctx, e.gameID, snap); err != nil {
		return fmt.Errorf("export audit for %s: %w", e.gameID, err)
	}
	return nil
}
