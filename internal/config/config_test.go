package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSim(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := LoadSim("")
		require.NoError(t, err)
		assert.Equal(t, DefaultSim(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfig(t, `
game_id: week-7
seed: 42
teams:
  home: colts
  away: bears
max_plays: 200
audit_dir: /tmp/trails
`)
		cfg, err := LoadSim(path)
		require.NoError(t, err)
		assert.Equal(t, "week-7", cfg.GameID)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, "colts", cfg.Teams.Home)
		assert.Equal(t, "bears", cfg.Teams.Away)
		assert.Equal(t, 200, cfg.MaxPlays)
		assert.Equal(t, "/tmp/trails", cfg.AuditDir)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeConfig(t, "game_id: week-8\n")
		cfg, err := LoadSim(path)
		require.NoError(t, err)
		assert.Equal(t, "week-8", cfg.GameID)
		assert.Equal(t, DefaultSim().MaxPlays, cfg.MaxPlays)
		assert.Equal(t, DefaultSim().Teams, cfg.Teams)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadSim(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("identical teams fail validation", func(t *testing.T) {
		path := writeConfig(t, `
teams:
  home: colts
  away: colts
`)
		_, err := LoadSim(path)
		assert.ErrorContains(t, err, "distinct")
	})

	t.Run("non-positive max_plays fails validation", func(t *testing.T) {
		path := writeConfig(t, "max_plays: -1\n")
		_, err := LoadSim(path)
		assert.ErrorContains(t, err, "max_plays")
	})
}

func TestLoadServer(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadServer()
		require.NoError(t, err)
		assert.Equal(t, ":8017", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 400, cfg.MaxPlays)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GRIDIRON_ADDR", ":9000")
		t.Setenv("GRIDIRON_GAME_ID", "playoff-1")
		t.Setenv("GRIDIRON_SEED", "1234")

		cfg, err := LoadServer()
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "playoff-1", cfg.GameID)
		assert.Equal(t, int64(1234), cfg.Seed)
	})

	t.Run("malformed value fails", func(t *testing.T) {
		t.Setenv("GRIDIRON_MAX_PLAYS", "lots")
		_, err := LoadServer()
		assert.Error(t, err)
	})
}
