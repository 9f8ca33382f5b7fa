package engine

import (
	"errors"

	"breakthrough/experiments/metrics"
	"breakthrough/game"
)

// ErrNoMoves reports an undecided position where the player to move has no
// legal move. The rules make it unreachable; seeing it means a broken state.
var ErrNoMoves = errors.New("no legal moves in an undecided game")

// ErrMoveCap reports a game stopped by the move cap without a winner.
var ErrMoveCap = errors.New("move cap reached without a winner")

type Runner interface {
	// Run plays a game till there's a winner or the move cap is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
