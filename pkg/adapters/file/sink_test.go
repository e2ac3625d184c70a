package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlabs/gridiron/pkg/adapters/file"
	"github.com/gridironlabs/gridiron/pkg/domain"
	"github.com/gridironlabs/gridiron/pkg/ports"
)

func TestFileSink_Contract(t *testing.T) {
	ports.RunAuditSinkContract(t, file.NewSink(t.TempDir()))
}

func TestFileSink_WritesJSONFiles(t *testing.T) {
	dir := t.TempDir()
	sink := file.NewSink(dir)
	ctx := context.Background()

	snap := domain.AuditSnapshot{
		GameID:    "week-1",
		CreatedAt: time.Now().UTC(),
		Entries:   []domain.AuditEntry{{Seq: 1, Kind: domain.AuditEvent, Summary: "kickoff"}},
	}
	require.NoError(t, sink.Save(ctx, "week-1", snap))

	data, err := os.ReadFile(filepath.Join(dir, "week-1.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"game_id": "week-1"`)
	assert.Contains(t, string(data), "kickoff")
}

func TestFileSink_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	sink := file.NewSink(dir)
	ctx := context.Background()

	require.NoError(t, sink.Save(ctx, "game-a", domain.AuditSnapshot{GameID: "game-a"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	ids, err := sink.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"game-a"}, ids)
}

func TestFileSink_ListMissingDirIsEmpty(t *testing.T) {
	sink := file.NewSink(filepath.Join(t.TempDir(), "never-created"))
	ids, err := sink.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileSink_EmptyGameID(t *testing.T) {
	sink := file.NewSink(t.TempDir())
	assert.Error(t, sink.Save(context.Background(), "", domain.AuditSnapshot{}))
	_, err := sink.Load(context.Background(), "")
	assert.Error(t, err)
}
