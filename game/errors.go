package game

import "github.com/pkg/errors"

var (
	// ErrIllegalMove is returned by Apply for a move that fails IsValidMove.
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver is wrapped into ErrIllegalMove results once a winner exists.
	ErrGameOver = errors.New("game is over")
	// ErrBadBoard is returned by ParseBoard for malformed input.
	ErrBadBoard = errors.New("malformed board")
)

func errBoardShape(rows int) error {
	return errors.Wrapf(ErrBadBoard, "expected %d rows, got %d", Size, rows)
}

func errRowWidth(y, width int) error {
	return errors.Wrapf(ErrBadBoard, "row %d has %d cells, expected %d", y, width, Size)
}

func errBadCell(x, y int, c byte) error {
	return errors.Wrapf(ErrBadBoard, "unknown cell %q at (%d, %d)", c, x, y)
}
