package agent

import (
	"context"
	"sync"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher"

	"golang.org/x/exp/rand"
)

type greedyAgent struct {
	mu     sync.Mutex
	rng    *rand.Rand
	params searcher.GreedyParams
}

func NewGreedyAgent(rng *rand.Rand, params searcher.GreedyParams) Agent {
	return &greedyAgent{rng: rng, params: params}
}

func (a *greedyAgent) FindAction(ctx context.Context, b *game.Board, p game.Player) (game.Action, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, metrics.SearchMetric{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	action, err := searcher.Greedy(b, p, a.rng, a.params)
	return action, metrics.SearchMetric{
		Agent:      GreedyPathSearch.String(),
		Goroutines: 1,
		Duration:   time.Since(start),
	}, err
}

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) Agent {
	return &randomAgent{rng: rng}
}

func (a *randomAgent) FindAction(ctx context.Context, b *game.Board, p game.Player) (game.Action, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, metrics.SearchMetric{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	action, err := searcher.UniformRandom(b, p, a.rng)
	return action, metrics.SearchMetric{
		Agent:      UniformRandom.String(),
		Goroutines: 1,
		Duration:   time.Since(start),
	}, err
}

// biasedRandomAgent plays searcher.BiasedRandom.
type biasedRandomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBiasedRandomAgent(rng *rand.Rand) Agent {
	return &biasedRandomAgent{rng: rng}
}

func (a *biasedRandomAgent) FindAction(ctx context.Context, b *game.Board, p game.Player) (game.Action, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, metrics.SearchMetric{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	action, err := searcher.BiasedRandom(b, p, a.rng)
	return action, metrics.SearchMetric{
		Agent:      BiasedRandom.String(),
		Goroutines: 1,
		Duration:   time.Since(start),
	}, err
}
