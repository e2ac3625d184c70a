package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/gridiron/pkg/adapters/redis"
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

func newTestSink(t *testing.T, opts ...redis.Option) (*redis.Sink, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	sink := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = sink.Close() })
	return sink, mr
}

func TestRedisSink_Contract(t *testing.T) {
	sink, _ := newTestSink(t)
	ports.RunAuditSinkContract(t, sink)
}

func TestRedisSink_TTLExpiration(t *testing.T) {
	sink, mr := newTestSink(t, redis.WithTTL(time.Second))
	ctx := context.Background()

	snap := domain.AuditSnapshot{GameID: "game-ttl", CreatedAt: time.Now().UTC()}
	require.NoError(t, sink.Save(ctx, "game-ttl", snap))

	_, err := sink.Load(ctx, "game-ttl")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = sink.Load(ctx, "game-ttl")
	assert.ErrorIs(t, err, domain.ErrAuditNotFound)

	// The index entry is pruned lazily on the next List.
	ids, err := sink.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "game-ttl")
}

func TestRedisSink_CustomPrefix(t *testing.T) {
	sink, mr := newTestSink(t, redis.WithPrefix("simulator:trail:"))
	ctx := context.Background()

	require.NoError(t, sink.Save(ctx, "game-1", domain.AuditSnapshot{GameID: "game-1"}))
	assert.True(t, mr.Exists("simulator:trail:game-1"))
	assert.False(t, mr.Exists("gridiron:audit:game-1"))
}
