package config

import (
	"fmt"
	"os"
	"strconv"

	"quoridor/engine"
	"quoridor/game"
	"quoridor/gamemaster"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Board struct {
	Size  int `yaml:"size"`
	Walls int `yaml:"walls"`
}

type Benchmark struct {
	Games       int    `yaml:"games"`
	OutputDir   string `yaml:"output_dir"`
	Name        string `yaml:"name"`
	RandomStart bool   `yaml:"random_start"`
	Seed        uint64 `yaml:"seed"`
	Charts      bool   `yaml:"charts"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type Config struct {
	Board     Board                `yaml:"board"`
	MaxMoves  int                  `yaml:"max_moves"`
	Player0   gamemaster.AgentSpec `yaml:"player0"`
	Player1   gamemaster.AgentSpec `yaml:"player1"`
	Benchmark Benchmark            `yaml:"benchmark"`
	Server    Server               `yaml:"server"`
	Log       Log                  `yaml:"log"`
}

func Default() Config {
	params := agent.DefaultParams()
	return Config{
		Board:    Board{Size: game.DefaultSize, Walls: game.DefaultWalls},
		MaxMoves: engine.MaxMoves,
		Player0:  gamemaster.AgentSpec{Kind: agent.GreedyPathSearch, Params: params},
		Player1:  gamemaster.AgentSpec{Kind: agent.MonteCarlo, Params: params},
		Benchmark: Benchmark{
			Games:     100,
			OutputDir: "results",
			Name:      "benchmark",
			Charts:    true,
		},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info", Pretty: true},
	}
}

// Load builds the configuration from the defaults, the YAML file at path
// (skipped when path is empty) and QUORIDOR_* environment variables, in that
// order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Board.Size = getenvInt("QUORIDOR_BOARD_SIZE", c.Board.Size)
	c.Board.Walls = getenvInt("QUORIDOR_WALLS", c.Board.Walls)
	c.MaxMoves = getenvInt("QUORIDOR_MAX_MOVES", c.MaxMoves)

	for i, spec := range []*gamemaster.AgentSpec{&c.Player0, &c.Player1} {
		prefix := fmt.Sprintf("QUORIDOR_P%d_", i)
		if v := os.Getenv(prefix + "KIND"); v != "" {
			kind, err := agent.ParseKind(v)
			if err != nil {
				return fmt.Errorf("invalid %sKIND: %w", prefix, err)
			}
			spec.Kind = kind
		}
		spec.Params.Simulations = getenvInt(prefix+"SIMULATIONS", spec.Params.Simulations)
		spec.Params.Goroutines = getenvInt(prefix+"GOROUTINES", spec.Params.Goroutines)
		spec.Params.GreedyProbability = getenvFloat(prefix+"GREEDY_PROBABILITY", spec.Params.GreedyProbability)
		spec.Params.PlayoutCap = getenvInt(prefix+"PLAYOUT_CAP", spec.Params.PlayoutCap)
		spec.Params.Seed = getenvUint(prefix+"SEED", spec.Params.Seed)
	}

	c.Benchmark.Games = getenvInt("QUORIDOR_GAMES", c.Benchmark.Games)
	c.Benchmark.OutputDir = getenv("QUORIDOR_OUTPUT_DIR", c.Benchmark.OutputDir)
	c.Benchmark.RandomStart = getenvBool("QUORIDOR_RANDOM_START", c.Benchmark.RandomStart)
	c.Benchmark.Seed = getenvUint("QUORIDOR_SEED", c.Benchmark.Seed)
	c.Server.Addr = getenv("QUORIDOR_ADDR", c.Server.Addr)
	c.Log.Level = getenv("QUORIDOR_LOG_LEVEL", c.Log.Level)
	c.Log.Pretty = getenvBool("QUORIDOR_LOG_PRETTY", c.Log.Pretty)
	return nil
}

func (c Config) Validate() error {
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves)
	}
	for i, spec := range c.Agents() {
		if err := spec.Params.Validate(); err != nil {
			return fmt.Errorf("invalid agent for player %d: %w", i, err)
		}
		if _, err := agent.New(spec.Kind, spec.Params); err != nil {
			return fmt.Errorf("invalid agent for player %d: %w", i, err)
		}
	}
	if c.Benchmark.Games <= 0 {
		return fmt.Errorf("benchmark games must be positive, got %d", c.Benchmark.Games)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c Config) Layout() game.Layout {
	return game.DefaultLayout(c.Board.Size, c.Board.Walls)
}

func (c Config) Agents() [2]gamemaster.AgentSpec {
	return [2]gamemaster.AgentSpec{c.Player0, c.Player1}
}

// Settings describes one hosted or benchmarked game with this configuration.
func (c Config) Settings() gamemaster.Settings {
	return gamemaster.Settings{
		Layout:      c.Layout(),
		Agents:      c.Agents(),
		MaxMoves:    c.MaxMoves,
		RandomStart: c.Benchmark.RandomStart,
		Seed:        c.Benchmark.Seed,
	}
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
