package main

import (
	"testing"

	"breakthrough/experiments"

	"github.com/stretchr/testify/require"
)

func TestWithSeed(t *testing.T) {
	t.Run("negative seed keeps a simulation valid", func(t *testing.T) {
		cfg := experiments.DefaultConfig()
		cfg.FirstSeed = 5
		cfg = withSeed(cfg, -1, true)
		require.Equal(t, 5, cfg.FirstSeed)
		require.NoError(t, cfg.Validate())
	})

	t.Run("non-negative seed starts the simulation", func(t *testing.T) {
		cfg := withSeed(experiments.DefaultConfig(), 12, true)
		require.Equal(t, 12, cfg.FirstSeed)
	})

	t.Run("single game takes any seed", func(t *testing.T) {
		cfg := withSeed(experiments.DefaultConfig(), -1, false)
		require.Equal(t, -1, cfg.FirstSeed)
	})
}
