// Package memory provides an in-memory audit sink, used in tests and as the
// default for short-lived simulations.
package memory

import (
	"context"
	"sync"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Sink implements ports.AuditSink in memory. Safe for concurrent use.
type Sink struct {
	mu   sync.RWMutex
	data map[string]domain.AuditSnapshot
}

var _ ports.AuditSink = (*Sink)(nil)

// NewSink creates an empty in-memory sink.
func NewSink() *Sink {
	return &Sink{data: make(map[string]domain.AuditSnapshot)}
}

// Save stores a deep copy so the caller cannot mutate the stored snapshot.
func (s *Sink) Save(ctx context.Context, gameID string, snap domain.AuditSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[gameID] = copySnapshot(snap)
	return nil
}

// Load retrieves a copy of the stored snapshot.
func (s *Sink) Load(ctx context.Context, gameID string) (domain.AuditSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[gameID]
	if !ok {
		return domain.AuditSnapshot{}, domain.ErrAuditNotFound
	}
	return copySnapshot(snap), nil
}

// Delete removes a snapshot. Missing ids are not an error.
func (s *Sink) Delete(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, gameID)
	return nil
}

// List returns the stored game ids.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

func copySnapshot(snap domain.AuditSnapshot) domain.AuditSnapshot {
	out := snap
	out.Entries = make([]domain.AuditEntry, len(snap.Entries))
	copy(out.Entries, snap.Entries)
	for i, e := range out.Entries {
		if e.Data == nil {
			continue
		}
		data := make(map[string]any, len(e.Data))
		for k, v := range e.Data {
			data[k] = v
		}
		out.Entries[i].Data = data
	}
	return out
}
