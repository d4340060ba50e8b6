package config

import (
	"os"
	"path/filepath"
	"testing"

	"quoridor/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quoridor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, 5, cfg.Layout().Size)
		require.Equal(t, 3, cfg.Layout().WallMax)
		require.Equal(t, 200, cfg.MaxMoves)
		require.Equal(t, 100, cfg.Benchmark.Games)
		require.Equal(t, agent.GreedyPathSearch, cfg.Player0.Kind)
		require.Equal(t, agent.MonteCarlo, cfg.Player1.Kind)
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
	})

	t.Run("file overrides only what it names", func(t *testing.T) {
		path := writeConfig(t, `
board:
  size: 7
player1:
  kind: random
  params:
    seed: 42
benchmark:
  games: 10
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Board.Size)
		require.Equal(t, 3, cfg.Board.Walls)
		require.Equal(t, agent.UniformRandom, cfg.Player1.Kind)
		require.Equal(t, uint64(42), cfg.Player1.Params.Seed)
		require.Equal(t, 10000, cfg.Player1.Params.Simulations, "unset params keep their defaults")
		require.Equal(t, 10, cfg.Benchmark.Games)
		require.Equal(t, zerolog.DebugLevel, cfg.Level())
	})

	t.Run("environment wins over file", func(t *testing.T) {
		path := writeConfig(t, "benchmark:\n  games: 10\n")
		t.Setenv("QUORIDOR_GAMES", "3")
		t.Setenv("QUORIDOR_P0_KIND", "mc")
		t.Setenv("QUORIDOR_P0_SIMULATIONS", "500")
		t.Setenv("QUORIDOR_P1_SEED", "7")
		t.Setenv("QUORIDOR_RANDOM_START", "true")
		t.Setenv("QUORIDOR_ADDR", ":9090")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Benchmark.Games)
		require.Equal(t, agent.MonteCarlo, cfg.Player0.Kind)
		require.Equal(t, 500, cfg.Player0.Params.Simulations)
		require.Equal(t, uint64(7), cfg.Player1.Params.Seed)
		require.True(t, cfg.Benchmark.RandomStart)
		require.Equal(t, ":9090", cfg.Server.Addr)

		settings := cfg.Settings()
		require.True(t, settings.RandomStart)
		require.Equal(t, cfg.MaxMoves, settings.MaxMoves)
		require.Equal(t, cfg.Player0, settings.Agents[0])
	})

	t.Run("malformed environment values are ignored", func(t *testing.T) {
		t.Setenv("QUORIDOR_MAX_MOVES", "lots")
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 200, cfg.MaxMoves)
	})

	t.Run("unknown agent kind", func(t *testing.T) {
		t.Setenv("QUORIDOR_P1_KIND", "oracle")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board: [1, 2"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"tiny board":          func(c *Config) { c.Board.Size = 1 },
		"negative walls":      func(c *Config) { c.Board.Walls = -1 },
		"no move ceiling":     func(c *Config) { c.MaxMoves = 0 },
		"no games":            func(c *Config) { c.Benchmark.Games = 0 },
		"bad probability":     func(c *Config) { c.Player1.Params.GreedyProbability = 1.5 },
		"negative goroutines": func(c *Config) { c.Player0.Params.Goroutines = -2 },
		"bad log level":       func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, Default().Validate())
}
