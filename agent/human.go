package agent

import "breakthrough/game"

type human struct {
	kind  Kind
	input <-chan game.Move
}

// NewHuman returns an agent fed by a user interface. ChooseMove blocks until
// a legal move arrives on input; illegal submissions are dropped. Once input
// is closed ChooseMove returns the zero Move, which the game rejects.
func NewHuman(input <-chan game.Move) Agent {
	return human{kind: HumanKind, input: input}
}

func (h human) Kind() Kind { return h.kind }

func (h human) ChooseMove(state *game.GameState) game.Move {
	for m := range h.input {
		if state.IsValidMove(m) {
			return m
		}
	}
	return game.Move{}
}
