// Package metrics exposes Prometheus instrumentation for the play pipeline.
// Collectors are registered on a private registry per Metrics value so that
// concurrent game simulations never fight over the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// Metrics holds the pipeline's collectors.
type Metrics struct {
	registry *prometheus.Registry

	playsTotal        *prometheus.CounterVec
	violationsTotal   *prometheus.CounterVec
	applyFailures     prometheus.Counter
	internalErrors    prometheus.Counter
	trackerDowngrades prometheus.Counter
	pipelineDuration  prometheus.Histogram
}

// New builds and registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		playsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridiron_plays_total",
				Help: "Plays processed, by type, outcome, and result",
			},
			[]string{"play_type", "outcome", "result"},
		),
		violationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridiron_violations_total",
				Help: "Validation violations, by rule domain",
			},
			[]string{"domain"},
		),
		applyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridiron_apply_failures_total",
			Help: "Applies rejected and rolled back",
		}),
		internalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridiron_internal_errors_total",
			Help: "Unexpected faults recovered at the pipeline boundary",
		}),
		trackerDowngrades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridiron_tracker_downgrades_total",
			Help: "Tracking faults swallowed by the pipeline",
		}),
		pipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridiron_pipeline_duration_seconds",
			Help:    "End-to-end duration of one play resolution",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	m.registry.MustRegister(
		m.playsTotal,
		m.violationsTotal,
		m.applyFailures,
		m.internalErrors,
		m.trackerDowngrades,
		m.pipelineDuration,
	)
	return m
}

// Registry exposes the registry for the serve command's /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObservePlay records the outcome of one pipeline invocation.
func (m *Metrics) ObservePlay(play domain.PlayResult, result domain.PipelineResult) {
	if m == nil {
		return
	}
	status := "success"
	if !result.Success {
		status = "failure"
	}
	m.playsTotal.WithLabelValues(string(play.Type), string(play.Outcome), status).Inc()
	for _, v := range result.Violations {
		m.violationsTotal.WithLabelValues(string(v.Domain)).Inc()
	}
	if result.ApplyError != "" {
		m.applyFailures.Inc()
	}
	m.pipelineDuration.Observe(result.Elapsed.Seconds())
}

// ObserveInternalError counts a recovered panic.
func (m *Metrics) ObserveInternalError() {
	if m == nil {
		return
	}
	m.internalErrors.Inc()
}

// ObserveTrackerDowngrade counts a swallowed tracking fault.
func (m *Metrics) ObserveTrackerDowngrade() {
	if m == nil {
		return
	}
	m.trackerDowngrades.Inc()
}
