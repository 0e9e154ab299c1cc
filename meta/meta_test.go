package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, MAX_TURNS, cfg.MaxTurns)
	require.Len(t, cfg.Players, 2)
}

func TestLoad(t *testing.T) {
	t.Run("missing fields keep defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "matches: 3\noutput_dir: out\n"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Matches)
		require.Equal(t, "out", cfg.OutputDir)
		require.Equal(t, MAX_TURNS, cfg.MaxTurns)
		require.Equal(t, []string{"Player1", "Player2"}, cfg.Players)
	})

	t.Run("all problems are reported", func(t *testing.T) {
		_, err := Load(writeConfig(t, "matches: 0\nmax_turns: -1\nplayers: [solo]\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "3 errors occurred")
	})

	t.Run("duplicate players", func(t *testing.T) {
		_, err := Load(writeConfig(t, "players: [a, a]\n"))
		require.ErrorContains(t, err, "distinct")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "matches: [\n"))
		require.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
