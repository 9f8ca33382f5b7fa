package experiments

import (
	"context"
	"fmt"
	"sync"

	"breakthrough/agent"
	"breakthrough/engine"
	"breakthrough/experiments/metrics"
	"breakthrough/game"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

type Option func(s *simulation)

// WithWorkers overrides the configured number of games played in parallel.
func WithWorkers(n int) Option {
	return func(s *simulation) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithCollector aggregates the simulation into c instead of a fresh collector.
func WithCollector(c metrics.Collector) Option {
	return func(s *simulation) {
		if c != nil {
			s.collector = c
		}
	}
}

type simulation struct {
	workers   int
	collector metrics.Collector
}

// Result holds the records of the games that completed, in seed order.
type Result struct {
	Summary metrics.Summary
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Dir     string // Run directory, empty if nothing was written
}

type outcome struct {
	played bool
	game   metrics.GameRecord
	moves  []metrics.MoveRecord
	err    error
}

// Simulate plays cfg.Games independent games. Every game has its own state,
// random stream and agents, so results only depend on the seeds and not on
// the number of workers. Failed games are reported together in the returned
// error while the other games still count.
func Simulate(ctx context.Context, cfg Config, options ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}

	s := &simulation{
		workers:   cfg.Workers,
		collector: metrics.NewCollector(),
	}
	for _, option := range options {
		option(s)
	}
	workers := min(s.workers, cfg.Games)

	log.Info().Msgf("playing %d games on %d workers: %s vs %s", cfg.Games, workers, kinds[0], kinds[1])

	outcomes := make([]outcome, cfg.Games)
	tasks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				outcomes[i] = s.playGame(i, cfg.FirstSeed+i, kinds, cfg.MaxMoves)
			}
		}()
	}

feed:
	for i := 0; i < cfg.Games && ctx.Err() == nil; i++ {
		select {
		case tasks <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(tasks)
	wg.Wait()

	var errs *multierror.Error
	result := &Result{}
	for _, o := range outcomes {
		if !o.played {
			continue
		}
		if o.err != nil {
			errs = multierror.Append(errs, o.err)
			continue
		}
		result.Games = append(result.Games, o.game)
		result.Moves = append(result.Moves, o.moves...)
	}
	if ctx.Err() != nil {
		errs = multierror.Append(errs, fmt.Errorf("simulation stopped after %d of %d games: %w", len(result.Games), cfg.Games, ctx.Err()))
	}
	result.Summary = s.collector.Complete()

	p1, p2 := result.Summary.Player1, result.Summary.Player2
	log.Info().Msgf("%s won %d, %s won %d", p1.Agent, p1.Wins, p2.Agent, p2.Wins)

	if cfg.OutDir != "" {
		dir, err := store(cfg, result)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		result.Dir = dir
	}

	return result, errs.ErrorOrNil()
}

func (s *simulation) playGame(index, seed int, kinds [2]agent.Kind, maxMoves int) outcome {
	agents := make([]agent.Agent, len(kinds))
	for i, kind := range kinds {
		a, err := agent.New(kind)
		if err != nil {
			return outcome{played: true, err: err}
		}
		agents[i] = a
	}

	e := engine.LocalEngine(game.NewGame(seed), agents,
		engine.WithMoveCap(maxMoves),
		engine.WithCollector(s.collector),
	)
	winner, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return outcome{played: true, err: err}
	}

	log.Info().Msgf("game %d: winner = %s (%s)", seed, winner, gameMetric.Agent(winner))

	id := index + 1
	moves := make([]metrics.MoveRecord, 0, len(moveMetrics))
	for _, mm := range moveMetrics {
		moves = append(moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return outcome{
		played: true,
		game:   metrics.GameRecord{ID: id, GameMetric: gameMetric},
		moves:  moves,
	}
}

func store(cfg Config, result *Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteSetup(cfg); err != nil {
		return writer.Dir(), err
	}
	if err := writer.WriteGameRecords(result.Games); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return writer.Dir(), err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
