package metrics

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"breakthrough/game"

	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestEncodeRecordsReportsFlushFailure(t *testing.T) {
	t.Run("game records", func(t *testing.T) {
		err := encodeGameRecords(failingWriter{}, []GameRecord{{ID: 1}})
		require.ErrorIs(t, err, errDiskFull, "a failed flush should not be lost")
	})

	t.Run("move records", func(t *testing.T) {
		err := encodeMoveRecords(failingWriter{}, []MoveRecord{{Game: 1}})
		require.ErrorIs(t, err, errDiskFull, "a failed flush should not be lost")
	})
}

func TestEncodeMoveRecords(t *testing.T) {
	var buf bytes.Buffer
	move := game.Move{From: game.Pos{X: 2, Y: 5}, To: game.Pos{X: 3, Y: 4}}
	err := encodeMoveRecords(&buf, []MoveRecord{{Game: 7, MoveMetric: MoveMetric{Step: 1, Player: game.Player1, Agent: "Clever", Move: move, Capture: true}}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "header plus one row")
	require.Equal(t, "7,1,Player1,Clever,2,5,3,4,true,0s", lines[1])
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root)
	require.NoError(t, err)
	require.Equal(t, root, filepath.Dir(w.Dir()), "run directory should be created under root")

	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, GameMetric: GameMetric{Seed: 3, Winner: game.Player2}}}))
	data, err := os.ReadFile(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "1,3,,,Player2,")
}
