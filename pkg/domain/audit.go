package domain

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// AuditEntryKind distinguishes transition records from free-text events in
// the audit trail.
type AuditEntryKind string

const (
	AuditTransition AuditEntryKind = "transition"
	AuditEvent      AuditEntryKind = "event"
)

// AuditEntry is one append-only record in a game's audit trail. Data holds
// the serialized transition (or event payload) as nested key/value records so
// the snapshot is directly JSON-exportable.
type AuditEntry struct {
	Seq       int            `json:"seq" mapstructure:"seq"`
	Timestamp time.Time      `json:"timestamp" mapstructure:"timestamp"`
	Kind      AuditEntryKind `json:"kind" mapstructure:"kind"`
	Summary   string         `json:"summary" mapstructure:"summary"`
	Data      map[string]any `json:"data,omitempty" mapstructure:"data"`
}

// AuditSnapshot is the exportable form of one game's audit trail. It is a
// value copy: mutating it never touches the tracker's live log.
type AuditSnapshot struct {
	GameID    string       `json:"game_id" mapstructure:"game_id"`
	CreatedAt time.Time    `json:"created_at" mapstructure:"created_at"`
	Entries   []AuditEntry `json:"entries" mapstructure:"entries"`
}

// DecodeAuditEntry rebuilds a typed entry from the nested key/value form a
// sink round-trips through JSON or Redis.
func DecodeAuditEntry(raw map[string]any) (AuditEntry, error) {
	var entry AuditEntry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &entry,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		WeaklyTypedInput: true,
	})
	if err != nil {
		return AuditEntry{}, fmt.Errorf("build audit decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return AuditEntry{}, fmt.Errorf("decode audit entry: %w", err)
	}
	return entry, nil
}
