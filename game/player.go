package game

import "fmt"

// Player identifies a side. NoPlayer doubles as the empty cell value and as
// "no winner yet".
type Player int8

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Empty is the value of an unoccupied board cell.
const Empty = NoPlayer

// Opponent returns the other side. Panics for NoPlayer.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic("NoPlayer has no opponent")
	}
}

// Direction is the row delta of a forward step: Player1 moves toward y = 0,
// Player2 toward y = Size-1.
func (p Player) Direction() int {
	if p == Player1 {
		return -1
	}
	return 1
}

// GoalRow is the opponent's back rank, reaching it wins the game.
func (p Player) GoalRow() int {
	if p == Player1 {
		return 0
	}
	return Size - 1
}

// Progress re-expresses row y as distance travelled toward p's goal, from 0
// on the far side to Size-1 on the goal row.
func (p Player) Progress(y int) int {
	if p.Direction() > 0 {
		return y
	}
	return Size - 1 - y
}

func (p Player) String() string {
	switch p {
	case NoPlayer:
		return "None"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}
