package ports

import (
	"context"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// AuditSink persists exported audit snapshots outside the pipeline. The core
// never writes to durable storage itself; sinks are wired by the caller (CLI,
// server) after a game completes or at checkpoints during one.
type AuditSink interface {
	// Save stores the snapshot under the game id, replacing any previous
	// snapshot for that game.
	Save(ctx context.Context, gameID string, snap domain.AuditSnapshot) error

	// Load retrieves a snapshot. Returns domain.ErrAuditNotFound when the
	// game has no stored snapshot.
	Load(ctx context.Context, gameID string) (domain.AuditSnapshot, error)

	// Delete removes a stored snapshot. Deleting a missing snapshot is not
	// an error.
	Delete(ctx context.Context, gameID string) error

	// List returns the game ids with stored snapshots.
	List(ctx context.Context) ([]string, error)
}

// Tracker is the observation surface the orchestrator records through. All
// methods are best-effort: implementations swallow internal failures rather
// than surface them into the pipeline.
type Tracker interface {
	// RecordPlay observes one completed (or rejected) play.
	RecordPlay(play domain.PlayResult, transition domain.EnrichedTransition, result domain.PipelineResult)

	// RecordEvent appends a free-text entry to the audit trail.
	RecordEvent(text string)

	// RecordStageTiming feeds the performance observer. Implementations
	// without performance capability ignore it.
	RecordStageTiming(playID string, stage domain.PipelineStage, elapsedNanos int64)

	// Statistics returns the running summary. Always callable.
	Statistics() domain.GameStatistics

	// AuditTrail returns a value copy of the append-only trail. Always
	// callable; reduced trackers return an empty snapshot.
	AuditTrail() domain.AuditSnapshot

	// PerformanceReport returns profiling data when the Performance
	// capability is declared, or a zero report otherwise.
	PerformanceReport() domain.PerformanceReport

	// Capabilities declares what this tracker actually records, so callers
	// branch on the descriptor rather than probing behavior.
	Capabilities() domain.TrackerCapabilities
}
