package track

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Full is the complete tracker: statistics, audit trail, and performance
// telemetry behind one facade. Every observer call is panic-guarded; an
// observer that faults is marked unhealthy and skipped from then on, while
// the parallel reduced counters keep the public surface answering.
type Full struct {
	logger *slog.Logger

	stats *statsCollector
	audit *auditLog
	perf  *perfMonitor
	red   *Reduced

	mu        sync.Mutex
	unhealthy map[string]bool
}

var _ ports.Tracker = (*Full)(nil)

// NewFull builds the full tracker for one game. A nil logger is replaced
// with a discard logger.
func NewFull(gameID string, logger *slog.Logger) *Full {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Full{
		logger:    logger,
		stats:     newStatsCollector(),
		audit:     newAuditLog(gameID),
		perf:      newPerfMonitor(),
		red:       NewReduced(),
		unhealthy: make(map[string]bool),
	}
}

// RecordPlay observes one play across all healthy observers. It never panics
// and never returns an error: a tracking fault must not reach the pipeline.
func (f *Full) RecordPlay(play domain.PlayResult, tr domain.EnrichedTransition, result domain.PipelineResult) {
	f.red.RecordPlay(play, tr, result)

	f.observe("stats", func() { f.stats.recordPlay(play, tr, result) })
	f.observe("audit", func() { f.audit.appendTransition(tr) })
	f.observe("perf", func() { f.perf.recordPlay() })
}

// RecordEvent appends a free-text entry to the audit trail.
func (f *Full) RecordEvent(text string) {
	f.observe("audit", func() { f.audit.appendEvent(text) })
}

// RecordStageTiming feeds the performance observer.
func (f *Full) RecordStageTiming(playID string, stage domain.PipelineStage, elapsedNanos int64) {
	f.observe("perf", func() { f.perf.recordStage(playID, stage, time.Duration(elapsedNanos)) })
}

// Statistics returns the full summary, or the reduced counters if the stats
// observer has faulted.
func (f *Full) Statistics() domain.GameStatistics {
	if f.healthy("stats") {
		return f.stats.snapshot()
	}
	return f.red.Statistics()
}

// AuditTrail returns a value copy of the trail; empty once the audit
// observer has faulted.
func (f *Full) AuditTrail() domain.AuditSnapshot {
	if f.healthy("audit") {
		return f.audit.snapshot()
	}
	return domain.AuditSnapshot{}
}

// PerformanceReport returns the profiling summary.
func (f *Full) PerformanceReport() domain.PerformanceReport {
	if f.healthy("perf") {
		return f.perf.snapshot()
	}
	return domain.PerformanceReport{}
}

// Capabilities reflects the observers still healthy right now.
func (f *Full) Capabilities() domain.TrackerCapabilities {
	return domain.TrackerCapabilities{
		Statistics:  true, // reduced counters back this even when degraded
		Audit:       f.healthy("audit"),
		Performance: f.healthy("perf"),
	}
}

// observe runs one observer call behind a recover guard. A panic downgrades
// that observer permanently for this game.
func (f *Full) observe(name string, fn func()) {
	if !f.healthy(name) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f.mu.Lock()
			f.unhealthy[name] = true
			f.mu.Unlock()
			f.logger.Warn("tracker observer faulted, downgrading", "observer", name, "err", r)
		}
	}()
	fn()
}

func (f *Full) healthy(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.unhealthy[name]
}
