package engine

import (
	"fmt"
	"time"

	"breakthrough/agent"
	"breakthrough/experiments/metrics"
	"breakthrough/game"
	"breakthrough/meta"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Option func(e *Engine)

// WithMoveCap stops a game after n moves. Non-positive values are ignored.
func WithMoveCap(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxMoves = n
		}
	}
}

// WithCollector reports every move and the finished game to c.
func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		if c != nil {
			e.metrics = c
		}
	}
}

// Engine owns the authoritative state of one game and asks the agent of the
// side to move for each move in turn.
type Engine struct {
	State    *game.GameState
	Agents   []agent.Agent // Agents[0] plays Player1, Agents[1] plays Player2
	maxMoves int
	metrics  metrics.Collector
}

func LocalEngine(state *game.GameState, agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Engine{
		State:    state,
		Agents:   agents,
		maxMoves: meta.MaxMoves,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) agentFor(p game.Player) agent.Agent {
	return e.Agents[int(p)-1]
}

// Run executes the game loop until a winner is found. Agents receive the
// live state; they only read it and draw from its random stream.
func (e *Engine) Run() (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Seed:      e.State.Seed(),
		Agent1:    e.agentFor(game.Player1).Kind().String(),
		Agent2:    e.agentFor(game.Player2).Kind().String(),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game %d started: %s vs %s", gameMetric.Seed, gameMetric.Agent1, gameMetric.Agent2)

	finish := func(err error) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
		gameMetric.Winner = e.State.Winner()
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(moveMetrics)
		// Only finished games reach the collector, moves included.
		if err == nil {
			for _, mm := range moveMetrics {
				e.metrics.AddMove(mm)
			}
			e.metrics.AddGame(gameMetric)
		}
		return gameMetric.Winner, gameMetric, moveMetrics, err
	}

	for e.State.Winner() == game.NoPlayer {
		if len(moveMetrics) >= e.maxMoves {
			return finish(fmt.Errorf("game %d: %w after %d moves", gameMetric.Seed, ErrMoveCap, len(moveMetrics)))
		}
		player := e.State.Turn()
		if len(e.State.PossibleMoves()) == 0 {
			return finish(fmt.Errorf("game %d: %w for %s\n%s", gameMetric.Seed, ErrNoMoves, player, e.State))
		}

		a := e.agentFor(player)
		start := time.Now()
		move := a.ChooseMove(e.State)
		elapsed := time.Since(start)

		capture, err := e.State.Apply(move)
		if err != nil {
			return finish(fmt.Errorf("game %d: %s agent for %s: %w", gameMetric.Seed, a.Kind(), player, err))
		}

		mm := metrics.MoveMetric{
			Step:     len(moveMetrics) + 1,
			Player:   player,
			Agent:    a.Kind().String(),
			Move:     move,
			Capture:  capture,
			Duration: elapsed,
		}
		moveMetrics = append(moveMetrics, mm)
		if capture {
			gameMetric.Captures++
		}

		log.Debug().Msgf("game %d move %d: %s plays %s", gameMetric.Seed, mm.Step, player, move)
	}

	log.Debug().Msgf("game %d over after %d moves, winner: %s", gameMetric.Seed, len(moveMetrics), e.State.Winner())
	return finish(nil)
}
