// Package file provides an audit sink backed by the local filesystem:
// one JSON file per game under a configured directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Sink implements ports.AuditSink on the filesystem.
type Sink struct {
	BasePath string
}

var _ ports.AuditSink = (*Sink)(nil)

// NewSink creates a sink rooted at basePath. If basePath is empty it defaults
// to ".gridiron/audit".
func NewSink(basePath string) *Sink {
	if basePath == "" {
		basePath = filepath.Join(".gridiron", "audit")
	}
	return &Sink{BasePath: basePath}
}

// Save writes the snapshot as indented JSON, replacing any previous file.
func (s *Sink) Save(ctx context.Context, gameID string, snap domain.AuditSnapshot) error {
	if gameID == "" {
		return fmt.Errorf("gameID cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("ensure audit directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal audit snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(gameID), data, 0644); err != nil {
		return fmt.Errorf("write audit file: %w", err)
	}
	return nil
}

// Load reads a snapshot back.
func (s *Sink) Load(ctx context.Context, gameID string) (domain.AuditSnapshot, error) {
	if gameID == "" {
		return domain.AuditSnapshot{}, fmt.Errorf("gameID cannot be empty")
	}

	data, err := os.ReadFile(s.path(gameID))
	if errors.Is(err, os.ErrNotExist) {
		return domain.AuditSnapshot{}, domain.ErrAuditNotFound
	}
	if err != nil {
		return domain.AuditSnapshot{}, fmt.Errorf("read audit file: %w", err)
	}

	var snap domain.AuditSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.AuditSnapshot{}, fmt.Errorf("unmarshal audit snapshot: %w", err)
	}
	return snap, nil
}

// Delete removes the snapshot file. A missing file is not an error.
func (s *Sink) Delete(ctx context.Context, gameID string) error {
	err := os.Remove(s.path(gameID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete audit file: %w", err)
	}
	return nil
}

// List returns the game ids with stored snapshots.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read audit directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

func (s *Sink) path(gameID string) string {
	return filepath.Join(s.BasePath, gameID+".json")
}
