package experiments

import (
	"bytes"
	"fmt"
	"os"

	"breakthrough/agent"
	"breakthrough/meta"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// Config describes a batch of games between two agent kinds.
type Config struct {
	Games     int    `yaml:"games"`
	Workers   int    `yaml:"workers"`
	FirstSeed int    `yaml:"first_seed"` // Game i uses seed FirstSeed+i
	Player1   string `yaml:"player1"`
	Player2   string `yaml:"player2"`
	Swap      bool   `yaml:"swap"` // Exchange the two sides
	MaxMoves  int    `yaml:"max_moves"`
	OutDir    string `yaml:"out_dir"` // Records are only written when set
}

func DefaultConfig() Config {
	return Config{
		Games:    meta.DefaultGames,
		Workers:  meta.DefaultWorkers,
		Player1:  agent.RandomKind.String(),
		Player2:  agent.CleverKind.String(),
		MaxMoves: meta.MaxMoves,
	}
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Games < 1 {
		result = multierror.Append(result, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Workers < 1 {
		result = multierror.Append(result, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.FirstSeed < 0 {
		result = multierror.Append(result, fmt.Errorf("first_seed must not be negative, got %d", c.FirstSeed))
	}
	if c.MaxMoves < 1 {
		result = multierror.Append(result, fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves))
	}
	for _, name := range []string{c.Player1, c.Player2} {
		kind, err := agent.ParseKind(name)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if kind == agent.HumanKind {
			result = multierror.Append(result, fmt.Errorf("simulations need computer agents, got %s", kind))
		}
	}

	return result.ErrorOrNil()
}

// Kinds returns the agent kinds of Player1 and Player2, swapped if asked.
func (c Config) Kinds() ([2]agent.Kind, error) {
	var kinds [2]agent.Kind
	for i, name := range []string{c.Player1, c.Player2} {
		kind, err := agent.ParseKind(name)
		if err != nil {
			return kinds, err
		}
		kinds[i] = kind
	}
	if c.Swap {
		kinds[0], kinds[1] = kinds[1], kinds[0]
	}
	return kinds, nil
}
