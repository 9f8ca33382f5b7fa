package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"breakthrough/meta"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate(), "default config should be valid")
	require.Equal(t, meta.DefaultGames, cfg.Games)
	require.Equal(t, meta.MaxMoves, cfg.MaxMoves)

	kinds, err := cfg.Kinds()
	require.NoError(t, err)
	require.Equal(t, "Random", kinds[0].String(), "Random should play Player1 by default")
	require.Equal(t, "Clever", kinds[1].String(), "Clever should play Player2 by default")

	cfg.Swap = true
	kinds, err = cfg.Kinds()
	require.NoError(t, err)
	require.Equal(t, "Clever", kinds[0].String(), "swap should exchange the sides")
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeConfig(t, "games: 10\nplayer1: clever\nswap: true\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		want := DefaultConfig()
		want.Games = 10
		want.Player1 = "clever"
		want.Swap = true
		require.Equal(t, want, cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "gmaes: 3\n"))
		require.Error(t, err, "misspelled fields should be rejected")
	})

	t.Run("every invalid field is reported", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "games: 0\nworkers: -1\nplayer2: human\n"))
		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 3)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "player1: minimax\n"))
		require.ErrorContains(t, err, "minimax")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
