package agent

import (
	"fmt"
	"strings"

	"breakthrough/game"
)

// Kind tags an agent implementation for display and configuration.
type Kind int

const (
	RandomKind Kind = iota
	CleverKind
	HumanKind
)

func (k Kind) String() string {
	switch k {
	case RandomKind:
		return "Random"
	case CleverKind:
		return "Clever"
	case HumanKind:
		return "Human"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts a kind name in any letter case.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{RandomKind, CleverKind, HumanKind} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown agent kind %q", s)
}

// Agent is a strategy for playing the game.
type Agent interface {
	// ChooseMove picks a move for the player to move in state. It may draw
	// from state.Random() but never changes the position.
	ChooseMove(state *game.GameState) game.Move
	Kind() Kind
}

// New builds a self-contained agent of the given kind. Human agents need an
// input source and are built with NewHuman instead.
func New(kind Kind) (Agent, error) {
	switch kind {
	case RandomKind:
		return NewRandom(), nil
	case CleverKind:
		return NewClever(), nil
	default:
		return nil, fmt.Errorf("agent kind %s cannot be built without an input source", kind)
	}
}

func legalMoves(state *game.GameState) []game.Move {
	moves := state.PossibleMoves()
	if len(moves) == 0 {
		// Unreachable while the game is undecided: a player's most advanced
		// piece always has an on-board diagonal that cannot hold its own piece.
		panic(fmt.Sprintf("no legal moves for %s at move %d", state.Turn(), state.MoveCount()))
	}
	return moves
}
