package track

import (
	"sync"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Reduced is the fallback tracker: play counts and simple clock totals only.
// It exists so the public surface stays callable when the richer observers
// are unavailable, and it is cheap enough that the full tracker maintains one
// in parallel as its degradation target.
type Reduced struct {
	mu             sync.Mutex
	totalPlays     int
	failedPlays    int
	secondsElapsed int
	clockBySide    map[domain.Side]int
}

var _ ports.Tracker = (*Reduced)(nil)

// NewReduced returns an empty reduced tracker.
func NewReduced() *Reduced {
	return &Reduced{clockBySide: make(map[domain.Side]int)}
}

// RecordPlay counts the play and accumulates clock usage.
func (r *Reduced) RecordPlay(play domain.PlayResult, tr domain.EnrichedTransition, result domain.PipelineResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.totalPlays++
	if !result.Success {
		r.failedPlays++
		return
	}
	if c := tr.Base.Clock; c != nil {
		r.secondsElapsed += c.SecondsElapsed
		r.clockBySide[tr.PossessingSide.Canonical()] += c.SecondsElapsed
	}
}

// RecordEvent is a no-op: the reduced tier keeps no audit trail.
func (r *Reduced) RecordEvent(string) {}

// RecordStageTiming is a no-op: the reduced tier keeps no telemetry.
func (r *Reduced) RecordStageTiming(string, domain.PipelineStage, int64) {}

// Statistics returns the counts the reduced tier does keep.
func (r *Reduced) Statistics() domain.GameStatistics {
	r.mu.Lock()
	defer r.mu.Unlock()

	bySide := make(map[domain.Side]domain.SideStatistics, len(r.clockBySide))
	for side, secs := range r.clockBySide {
		bySide[side] = domain.SideStatistics{ClockUsed: secs}
	}
	return domain.GameStatistics{
		TotalPlays:     r.totalPlays,
		FailedPlays:    r.failedPlays,
		SecondsElapsed: r.secondsElapsed,
		BySide:         bySide,
	}
}

// AuditTrail returns an empty snapshot; the reduced tier records none.
func (r *Reduced) AuditTrail() domain.AuditSnapshot {
	return domain.AuditSnapshot{}
}

// PerformanceReport returns a zero report.
func (r *Reduced) PerformanceReport() domain.PerformanceReport {
	return domain.PerformanceReport{}
}

// Capabilities declares the reduced tier: statistics only.
func (r *Reduced) Capabilities() domain.TrackerCapabilities {
	return domain.TrackerCapabilities{Statistics: true}
}
