package agent

import (
	"context"
	"fmt"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"golang.org/x/exp/rand"
)

// Kind selects the decision policy bound to a player.
type Kind int

const (
	GreedyPathSearch Kind = iota
	MonteCarlo
	UniformRandom
	BiasedRandom
)

func (k Kind) String() string {
	switch k {
	case GreedyPathSearch:
		return "greedy"
	case MonteCarlo:
		return "montecarlo"
	case UniformRandom:
		return "random"
	case BiasedRandom:
		return "biased"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "greedy", "astar", "greedyPathSearch":
		return GreedyPathSearch, nil
	case "montecarlo", "mc", "monteCarlo":
		return MonteCarlo, nil
	case "random", "uniformRandom":
		return UniformRandom, nil
	case "biased", "biasedRandom":
		return BiasedRandom, nil
	default:
		return 0, fmt.Errorf("unknown agent kind %q", s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Params configures an agent. Fields a kind does not use are ignored. A zero
// Seed draws the seed from the clock.
type Params struct {
	Simulations       int     `yaml:"simulations" json:"simulations"`
	Goroutines        int     `yaml:"goroutines" json:"goroutines"`
	GreedyProbability float64 `yaml:"greedy_probability" json:"greedyProbability"`
	PlayoutCap        int     `yaml:"playout_cap" json:"playoutCap"`
	Seed              uint64  `yaml:"seed" json:"seed"`
	RandomTieBreak    bool    `yaml:"random_tie_break" json:"randomTieBreak"`
	Metrics           bool    `yaml:"metrics" json:"metrics"`
}

func DefaultParams() Params {
	return Params{
		Simulations:       searcher.DefaultSimulations,
		GreedyProbability: searcher.DefaultGreedyProbability,
		PlayoutCap:        searcher.DefaultPlayoutCap,
	}
}

// Validate rejects values the searchers would panic on. Zero counts fall
// back to the searcher defaults.
func (p Params) Validate() error {
	switch {
	case p.Simulations < 0:
		return fmt.Errorf("simulations must not be negative, got %d", p.Simulations)
	case p.Goroutines < 0:
		return fmt.Errorf("goroutines must not be negative, got %d", p.Goroutines)
	case p.GreedyProbability < 0 || p.GreedyProbability > 1:
		return fmt.Errorf("greedy probability must be in [0, 1], got %v", p.GreedyProbability)
	case p.PlayoutCap < 0:
		return fmt.Errorf("playout cap must not be negative, got %d", p.PlayoutCap)
	}
	return nil
}

type Agent interface {
	// FindAction returns the action p should play on b and the search
	// metrics (if collected). b is not modified.
	FindAction(ctx context.Context, b *game.Board, p game.Player) (game.Action, metrics.SearchMetric, error)
}

func New(kind Kind, params Params) (Agent, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case GreedyPathSearch:
		return NewGreedyAgent(newRand(params.Seed), searcher.DefaultGreedyParams()), nil
	case MonteCarlo:
		return NewEvaluationAgent(newMonteCarlo(params)), nil
	case UniformRandom:
		return NewRandomAgent(newRand(params.Seed)), nil
	case BiasedRandom:
		return NewBiasedRandomAgent(newRand(params.Seed)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %d", kind)
	}
}

// Decide builds a one-off agent of kind and asks it for p's action.
func Decide(ctx context.Context, b *game.Board, p game.Player, kind Kind, params Params) (game.Action, error) {
	a, err := New(kind, params)
	if err != nil {
		return game.Action{}, err
	}
	action, _, err := a.FindAction(ctx, b, p)
	return action, err
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func newMonteCarlo(params Params) *searcher.MonteCarlo {
	options := []searcher.Option{}

	if params.Simulations > 0 {
		options = append(options, searcher.WithSimulations(params.Simulations))
	}
	if params.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(params.Goroutines))
	}
	options = append(options, searcher.WithGreedyProbability(params.GreedyProbability))
	if params.PlayoutCap > 0 {
		options = append(options, searcher.WithPlayoutCap(params.PlayoutCap))
	}
	if params.Seed != 0 {
		options = append(options, searcher.WithSeed(params.Seed))
	}
	if params.RandomTieBreak {
		options = append(options, searcher.WithRandomTieBreak())
	}
	if params.Metrics {
		options = append(options, searcher.WithMetrics())
	}

	return searcher.NewMonteCarlo(options...)
}
