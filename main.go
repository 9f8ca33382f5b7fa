package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"breakthrough/agent"
	"breakthrough/experiments"
	"breakthrough/game"
	"breakthrough/gamemaster"
	"breakthrough/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	seed := flag.Int("seed", -1, "Game seed, negative for a time based seed; with -sim the first seed, negative keeps the configured one")
	swap := flag.Bool("swap", false, "Exchange the agents of the two sides")
	sim := flag.Int("sim", 0, "Simulate this many games instead of playing one")
	workers := flag.Int("workers", meta.DefaultWorkers, "Number of games simulated in parallel")
	configPath := flag.String("config", "", "YAML match config")
	out := flag.String("out", "", "Directory for simulation records")
	player1 := flag.String("p1", "", "Agent of Player1: random, clever or human")
	player2 := flag.String("p2", "", "Agent of Player2: random, clever or human")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	setupLogging(*verbose)

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Flags given explicitly override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg = withSeed(cfg, *seed, *sim > 0)
		case "swap":
			cfg.Swap = *swap
		case "workers":
			cfg.Workers = *workers
		case "out":
			cfg.OutDir = *out
		case "p1":
			cfg.Player1 = *player1
		case "p2":
			cfg.Player2 = *player2
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	display := newDisplay(os.Stdout)

	if *sim > 0 {
		cfg.Games = *sim
		if err := simulate(ctx, cfg, display); err != nil {
			log.Error().Err(err).Msg("simulation finished with errors")
			os.Exit(1)
		}
		return
	}

	if err := play(*seed, cfg, display); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// withSeed applies the -seed flag. A simulation needs reproducible seeds, so
// a negative seed leaves its first seed unchanged.
func withSeed(cfg experiments.Config, seed int, simulating bool) experiments.Config {
	if simulating && seed < 0 {
		return cfg
	}
	cfg.FirstSeed = seed
	return cfg
}

func setupLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func simulate(ctx context.Context, cfg experiments.Config, d *display) error {
	d.println(fmt.Sprintf("playing %d games", cfg.Games))

	result, err := experiments.Simulate(ctx, cfg)
	if result != nil {
		for _, g := range result.Games {
			d.println(fmt.Sprintf("game %d: winner = %s", g.Seed, g.Agent(g.Winner)))
		}
		d.summary(result.Summary)
		if result.Dir != "" {
			d.println("records written to " + result.Dir)
		}
	}
	return err
}

// play runs one game, reading moves of human sides from stdin as "x1 y1 x2 y2".
func play(seed int, cfg experiments.Config, d *display) error {
	kinds, err := cfg.Kinds()
	if err != nil {
		return err
	}

	var input chan game.Move
	agents := make([]agent.Agent, len(kinds))
	for i, kind := range kinds {
		if kind == agent.HumanKind {
			if input == nil {
				input = make(chan game.Move)
				go readMoves(os.Stdin, input)
			}
			agents[i] = agent.NewHuman(input)
			continue
		}
		if agents[i], err = agent.New(kind); err != nil {
			return err
		}
	}

	gm := gamemaster.NewLocalEngine(seed)
	state, getUpdate := gm.Init()
	d.println(fmt.Sprintf("seed %d: %s vs %s", state.Seed(), kinds[0], kinds[1]))
	d.board(state)

	for state.Winner() == game.NoPlayer {
		a := agents[int(state.Turn())-1]
		if a.Kind() == agent.HumanKind {
			d.prompt(state.Turn())
		}
		if _, err := gm.Step(a); err != nil {
			return err
		}
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			d.move(u)
			state = u.State
		}
	}

	d.winner(state.Winner(), kinds[int(state.Winner())-1])
	return nil
}

func readMoves(r io.Reader, input chan<- game.Move) {
	defer close(input)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var m game.Move
		_, err := fmt.Sscan(scanner.Text(), &m.From.X, &m.From.Y, &m.To.X, &m.To.Y)
		if err != nil {
			log.Warn().Msgf("expected a move as \"x1 y1 x2 y2\", got %q", scanner.Text())
			continue
		}
		input <- m
	}
}
