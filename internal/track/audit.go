package track

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gridironlabs/gridiron/pkg/domain"
)

// auditLog is the append-only trail of every transition and event in one
// game. Entries are never rewritten; Snapshot hands out value copies.
type auditLog struct {
	mu      sync.Mutex
	gameID  string
	started time.Time
	entries []domain.AuditEntry
	seq     int
}

func newAuditLog(gameID string) *auditLog {
	return &auditLog{gameID: gameID, started: time.Now().UTC()}
}

func (l *auditLog) appendTransition(tr domain.EnrichedTransition) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.entries = append(l.entries, domain.AuditEntry{
		Seq:       l.seq,
		Timestamp: tr.CreatedAt,
		Kind:      domain.AuditTransition,
		Summary:   tr.Summary(),
		Data:      transitionToMap(tr),
	})
}

func (l *auditLog) appendEvent(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	l.entries = append(l.entries, domain.AuditEntry{
		Seq:       l.seq,
		Timestamp: time.Now().UTC(),
		Kind:      domain.AuditEvent,
		Summary:   text,
	})
}

func (l *auditLog) snapshot() domain.AuditSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]domain.AuditEntry, len(l.entries))
	copy(entries, l.entries)
	return domain.AuditSnapshot{
		GameID:    l.gameID,
		CreatedAt: l.started,
		Entries:   entries,
	}
}

// transitionToMap serializes the transition into the nested key/value form
// the snapshot exports. A JSON round trip keeps the shape identical to what
// sinks will store, so DecodeAuditEntry works on both.
func transitionToMap(tr domain.EnrichedTransition) map[string]any {
	raw, err := json.Marshal(tr)
	if err != nil {
		return map[string]any{"id": tr.ID, "marshal_error": err.Error()}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"id": tr.ID, "marshal_error": err.Error()}
	}
	return out
}
