package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/pkg/errors"
)

type StateHash uint64

// GameState is a game of Breakthrough. The board only changes through Apply
// and Undo; agents read it through the accessor methods.
type GameState struct {
	board  Board
	turn   Player  // The player to move
	moves  int     // Moves applied since creation
	winner Player  // NoPlayer until the game is decided
	pieces [3]int  // Pieces left per player, pieces[NoPlayer] is unused
	seed   int     // Seed the game was created with, -1 if none
	random *Random // Randomness for agents reading this state
}

// NewGame returns a game in the starting position with Player1 to move.
// A negative seed makes the game's random stream non-reproducible.
func NewGame(seed int) *GameState {
	gs := &GameState{
		board: StartingBoard(),
		turn:  Player1,
	}
	gs.pieces[Player1], gs.pieces[Player2] = 2*Size, 2*Size
	gs.setSeed(seed)
	return gs
}

// FromBoard builds a state from an arbitrary layout. Piece counts are derived
// from the board, and the winner is set if the layout is already decided.
func FromBoard(board Board, turn Player, moves int, seed int) *GameState {
	if turn != Player1 && turn != Player2 {
		panic(fmt.Sprintf("invalid turn %v", turn))
	}
	gs := &GameState{
		board: board,
		turn:  turn,
		moves: moves,
	}
	for _, p := range []Player{Player1, Player2} {
		gs.pieces[p] = board.Count(p)
	}
	for _, p := range []Player{Player1, Player2} {
		if gs.pieces[p.Opponent()] == 0 || gs.reachedGoal(p) {
			gs.winner = p
		}
	}
	gs.setSeed(seed)
	return gs
}

func (gs *GameState) setSeed(seed int) {
	if seed < 0 {
		seed = -1
	}
	gs.seed = seed
	gs.random = NewRandom(seed)
}

func (gs *GameState) reachedGoal(p Player) bool {
	y := p.GoalRow()
	for x := 0; x < Size; x++ {
		if gs.board[x][y] == p {
			return true
		}
	}
	return false
}

// Clone returns a fully independent copy. The board and piece counts are
// arrays and copy by value; the random generator is duplicated, so draws on
// the clone do not advance the original.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.random = gs.random.Clone()
	return &c
}

func (gs *GameState) Turn() Player        { return gs.turn }
func (gs *GameState) MoveCount() int      { return gs.moves }
func (gs *GameState) Winner() Player      { return gs.winner }
func (gs *GameState) Pieces(p Player) int { return gs.pieces[p] }
func (gs *GameState) Seed() int           { return gs.seed }
func (gs *GameState) Random() *Random     { return gs.random }
func (gs *GameState) At(pos Pos) Player   { return gs.board.At(pos) }
func (gs *GameState) Board() Board        { return gs.board }

// Direction is the row delta of the player to move.
func (gs *GameState) Direction() int {
	return gs.turn.Direction()
}

// IsValidMove reports whether the player to move may play m.
func (gs *GameState) IsValidMove(m Move) bool {
	from, to := m.From, m.To
	if gs.winner != NoPlayer || !from.InBounds() || !to.InBounds() {
		return false
	}
	dx := to.X - from.X
	target := gs.board.At(to)
	return gs.board.At(from) == gs.turn &&
		to.Y-from.Y == gs.Direction() &&
		dx >= -1 && dx <= 1 &&
		target != gs.turn &&
		!(dx == 0 && target != Empty) // only diagonal steps capture
}

// PossibleMoves lists every legal move for the player to move, scanning
// sources by x then y and destinations left to right.
func (gs *GameState) PossibleMoves() []Move {
	var moves []Move
	if gs.winner != NoPlayer {
		return moves
	}
	dir := gs.Direction()
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if gs.board[x][y] != gs.turn {
				continue
			}
			from := Pos{X: x, Y: y}
			for x1 := x - 1; x1 <= x+1; x1++ {
				m := Move{From: from, To: Pos{X: x1, Y: y + dir}}
				if gs.IsValidMove(m) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Apply plays m for the player to move and reports whether it captured.
// An illegal move leaves the state untouched and returns ErrIllegalMove.
func (gs *GameState) Apply(m Move) (bool, error) {
	if gs.winner != NoPlayer {
		return false, errors.Wrapf(ErrIllegalMove, "%s: %v", m, ErrGameOver)
	}
	if !gs.IsValidMove(m) {
		return false, errors.Wrapf(ErrIllegalMove, "%s by %s", m, gs.turn)
	}

	me, opp := gs.turn, gs.turn.Opponent()
	capture := gs.board.At(m.To) == opp
	gs.board.set(m.From, Empty)
	gs.board.set(m.To, me)
	if capture {
		gs.pieces[opp]--
	}
	if m.To.Y == me.GoalRow() || gs.pieces[opp] == 0 {
		gs.winner = me
	}
	gs.turn = opp
	gs.moves++
	return capture, nil
}

// Undo reverses the last applied move m. wasCapture must be the value Apply
// returned for m; passing anything else, or a move that was not the last one
// applied, is a precondition violation and panics where it can be detected.
func (gs *GameState) Undo(m Move, wasCapture bool) {
	mover := gs.turn.Opponent()
	if gs.moves == 0 || gs.board.At(m.To) != mover || gs.board.At(m.From) != Empty {
		panic(fmt.Sprintf("undo of %s does not match the last move", m))
	}
	if wasCapture && gs.pieces[gs.turn] >= 2*Size {
		panic(fmt.Sprintf("undo of %s claims a capture that did not happen", m))
	}

	gs.turn = mover
	gs.winner = NoPlayer
	opp := mover.Opponent()
	if wasCapture {
		gs.pieces[opp]++
		gs.board.set(m.To, opp)
	} else {
		gs.board.set(m.To, Empty)
	}
	gs.board.set(m.From, mover)
	gs.moves--
}

// Hash identifies the position, turn, winner and move count.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.winner))
	binary.Write(hasher, binary.LittleEndian, int64(gs.moves))

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			hasher.Write([]byte{byte(gs.board[x][y])})
		}
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("move %d, %s to play, winner %s\n%s", gs.moves, gs.turn, gs.winner, gs.board.String())
}
