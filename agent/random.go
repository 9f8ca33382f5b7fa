package agent

import "breakthrough/game"

type randomAgent struct {
	kind Kind
}

// NewRandom returns an agent that plays uniformly random legal moves.
func NewRandom() Agent {
	return randomAgent{kind: RandomKind}
}

func (a randomAgent) Kind() Kind { return a.kind }

func (a randomAgent) ChooseMove(state *game.GameState) game.Move {
	moves := legalMoves(state)
	return moves[state.Random().Next(len(moves))]
}
