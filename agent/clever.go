package agent

import (
	"math"

	"breakthrough/game"
)

// Scoring weights of the clever agent. They define its playing strength.
const (
	goalScore        = 100
	exchangeWeight   = 10
	captureNearHome  = 30
	captureElsewhere = 15
	keepPaceBonus    = 3
	exposurePenalty  = 2
	exposureBonus    = 2
	edgeBonus        = 1
)

type clever struct {
	kind Kind
}

// NewClever returns a one-ply heuristic agent. It scores every legal move
// from local features and picks uniformly among the best.
func NewClever() Agent {
	return clever{kind: CleverKind}
}

func (c clever) Kind() Kind { return c.kind }

func (c clever) ChooseMove(state *game.GameState) game.Move {
	moves := legalMoves(state)

	if state.MoveCount() < 2 { // first move of either side
		if state.Seed() >= 0 {
			return moves[state.Seed()%len(moves)]
		}
		return moves[state.Random().Next(len(moves))]
	}

	best := []game.Move{}
	bestScore := math.MinInt
	for _, sm := range ScoreMoves(state) {
		if sm.Score > bestScore {
			best = []game.Move{sm.Move}
			bestScore = sm.Score
		} else if sm.Score == bestScore {
			best = append(best, sm.Move)
		}
	}
	return best[state.Random().Next(len(best))]
}

// ScoredMove pairs a legal move with its heuristic score.
type ScoredMove struct {
	Move  game.Move
	Score int
}

// ScoreMoves scores every legal move of the player to move, in PossibleMoves
// order.
func ScoreMoves(state *game.GameState) []ScoredMove {
	moves := state.PossibleMoves()
	scored := make([]ScoredMove, 0, len(moves))
	if len(moves) == 0 {
		return scored
	}

	me := state.Turn()
	opp := me.Opponent()
	forwardY, forwardOppY := forwardRow(state, me), forwardRow(state, opp)
	for _, m := range moves {
		scored = append(scored, ScoredMove{
			Move:  m,
			Score: scoreMove(state, m, forwardY, forwardOppY),
		})
	}
	return scored
}

// forwardRow returns the row of p's most advanced piece. p must have a piece.
func forwardRow(state *game.GameState, p game.Player) int {
	row := -1
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			if state.At(game.Pos{X: x, Y: y}) != p {
				continue
			}
			if row < 0 || p.Progress(y) > p.Progress(row) {
				row = y
			}
		}
	}
	return row
}

func scoreMove(state *game.GameState, m game.Move, forwardY, forwardOppY int) int {
	if m.To.Y == 0 || m.To.Y == game.Size-1 {
		return goalScore
	}

	me := state.Turn()
	opp := me.Opponent()
	dir := me.Direction()

	// Opponent pieces that could take the mover on its new square, and own
	// pieces beside the origin that could retake.
	attack, defend := 0, 0
	for dx := -1; dx <= 1; dx += 2 {
		x1 := m.To.X + dx
		if x1 < 0 || x1 >= game.Size {
			continue
		}
		if state.At(game.Pos{X: x1, Y: m.To.Y + dir}) == opp {
			attack++
		}
		if x1 != m.From.X && state.At(game.Pos{X: x1, Y: m.From.Y}) == me {
			defend++
		}
	}
	gain, lose := attack, attack
	if attack > defend {
		gain, lose = defend, defend+1
	}

	capture := state.At(m.To) == opp
	toY := me.Progress(m.To.Y)

	score := gain*exchangeWeight - lose*exchangeWeight + toY
	if capture {
		if toY == 1 {
			score += captureNearHome
		} else {
			score += captureElsewhere
		}
	}

	if match(state, m.To.X, forwardY, me) {
		score += keepPaceBonus
	}

	oppFront := me.Progress(forwardOppY)
	if me.Progress(m.From.Y) < oppFront && match(state, m.From.X, forwardOppY, opp) {
		score -= exposurePenalty
	} else if toY < oppFront && match(state, m.To.X, forwardOppY, opp) {
		score += exposureBonus
	}

	if m.To.X == 0 || m.To.X == game.Size-1 {
		score += edgeBonus
	}
	return score
}

// match reports whether p holds a square in columns x-1..x+1 of row y.
func match(state *game.GameState, x, y int, p game.Player) bool {
	for x1 := x - 1; x1 <= x+1; x1++ {
		if x1 >= 0 && x1 < game.Size && state.At(game.Pos{X: x1, Y: y}) == p {
			return true
		}
	}
	return false
}
