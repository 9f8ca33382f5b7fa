package game

import "fmt"

// Size is the width and height of the board.
const Size = 7

// Pos is a board coordinate.
type Pos struct {
	X, Y int
}

// InBounds reports whether the position lies on the board.
func (p Pos) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Move represents a single step of one piece. Whether it is legal depends on
// the GameState it is played against.
type Move struct {
	From Pos
	To   Pos
}

func (m Move) String() string {
	return fmt.Sprintf("%s -> %s", m.From, m.To)
}
