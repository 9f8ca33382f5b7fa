package gamemaster

import (
	"breakthrough/agent"
	"breakthrough/game"
)

// Update describes a change of the authoritative state. State is a clone
// owned by the receiver.
type Update struct {
	Move   game.Move
	Undone bool // Move was taken back rather than played
	State  *game.GameState
	Hash   game.StateHash
}

// UpdateGetter returns the oldest undelivered update, or false if there is
// none yet.
type UpdateGetter func() (Update, bool)

// Engine serves an interactive front end: a human submits moves through
// Play, computer sides move through Step, and Undo/Redo step through the
// game's history.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(game.Move) error
	Step(agent.Agent) (game.Move, error)
	Undo() error
	Redo() error
	State() *game.GameState
}
