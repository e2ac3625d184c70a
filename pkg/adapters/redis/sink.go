// Package redis provides an audit sink backed by Redis, for callers keeping
// trails from many concurrent simulations in one place.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

// Sink implements ports.AuditSink using Redis.
type Sink struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.AuditSink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithTTL sets the expiration for stored snapshots.
func WithTTL(ttl time.Duration) Option {
	return func(s *Sink) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for snapshots.
func WithPrefix(prefix string) Option {
	return func(s *Sink) {
		s.prefix = prefix
	}
}

// New creates a sink with its own client.
func New(address, password string, db int, opts ...Option) *Sink {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	s := &Sink{
		client: client,
		prefix: "gridiron:audit:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) key(gameID string) string {
	return s.prefix + gameID
}

func (s *Sink) indexKey() string {
	return s.prefix + "index"
}

// Save stores the snapshot as JSON and registers the game in the index set.
func (s *Sink) Save(ctx context.Context, gameID string, snap domain.AuditSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal audit snapshot: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(gameID), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), gameID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save audit to redis: %w", err)
	}
	return nil
}

// Load retrieves a snapshot.
func (s *Sink) Load(ctx context.Context, gameID string) (domain.AuditSnapshot, error) {
	val, err := s.client.Get(ctx, s.key(gameID)).Result()
	if err == backend.Nil {
		return domain.AuditSnapshot{}, domain.ErrAuditNotFound
	}
	if err != nil {
		return domain.AuditSnapshot{}, fmt.Errorf("get audit from redis: %w", err)
	}

	var snap domain.AuditSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return domain.AuditSnapshot{}, fmt.Errorf("unmarshal audit snapshot: %w", err)
	}
	return snap, nil
}

// Delete removes a snapshot and its index entry.
func (s *Sink) Delete(ctx context.Context, gameID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(gameID))
	pipe.SRem(ctx, s.indexKey(), gameID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete audit from redis: %w", err)
	}
	return nil
}

// List returns the indexed game ids. Entries whose snapshot expired are
// pruned lazily.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list audits from redis: %w", err)
	}

	var out []string
	for _, id := range ids {
		n, err := s.client.Exists(ctx, s.key(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("check audit existence: %w", err)
		}
		if n == 0 {
			_ = s.client.SRem(ctx, s.indexKey(), id).Err()
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// Close closes the underlying client.
func (s *Sink) Close() error {
	return s.client.Close()
}
