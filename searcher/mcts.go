package searcher

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(m *MonteCarlo)

// Score is the playout record of one candidate action.
type Score struct {
	Action      game.Action
	Wins        int
	Simulations int
	Value       float64 // Wins / Simulations
	Decisive    bool    // the action itself puts the pawn on its goal row
}

// MonteCarlo scores every legal action by the fraction of random playouts
// won after playing it. Candidate actions are evaluated in parallel, each on
// its own board clone with its own random generator.
type MonteCarlo struct {
	simulations       int
	goroutines        int
	greedyProbability float64
	playoutCap        int
	seed              uint64
	seeded            bool
	randomTieBreak    bool
	metrics           metrics.Collector

	mu     sync.Mutex
	source *rand.Rand // draws one seed per evaluation
}

// WithSimulations sets the total playout budget shared by all candidates.
func WithSimulations(simulations int) Option {
	return func(m *MonteCarlo) {
		m.simulations = simulations
	}
}

func WithGoroutines(goroutines int) Option {
	return func(m *MonteCarlo) {
		m.goroutines = goroutines
	}
}

func WithGreedyProbability(p float64) Option {
	return func(m *MonteCarlo) {
		m.greedyProbability = p
	}
}

func WithPlayoutCap(limit int) Option {
	return func(m *MonteCarlo) {
		m.playoutCap = limit
	}
}

// WithSeed makes the sequence of evaluations reproducible. Without it the
// seed is taken from the clock.
func WithSeed(seed uint64) Option {
	return func(m *MonteCarlo) {
		m.seed = seed
		m.seeded = true
	}
}

// WithRandomTieBreak picks uniformly among equally scored actions instead
// of the first one in legal action order.
func WithRandomTieBreak() Option {
	return func(m *MonteCarlo) {
		m.randomTieBreak = true
	}
}

func WithMetrics() Option {
	return func(m *MonteCarlo) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		simulations:       DefaultSimulations,
		goroutines:        runtime.NumCPU(),
		greedyProbability: DefaultGreedyProbability,
		playoutCap:        DefaultPlayoutCap,
		metrics:           metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.simulations <= 0 {
		panic(fmt.Sprintf("simulation budget must be positive, got %d", m.simulations))
	}
	if m.goroutines <= 0 {
		panic(fmt.Sprintf("goroutines must be positive, got %d", m.goroutines))
	}
	if m.greedyProbability < 0 || m.greedyProbability > 1 {
		panic(fmt.Sprintf("greedy probability must be within [0, 1], got %v", m.greedyProbability))
	}
	if m.playoutCap <= 0 {
		panic(fmt.Sprintf("playout cap must be positive, got %d", m.playoutCap))
	}
	if !m.seeded {
		m.seed = uint64(time.Now().UnixNano())
	}
	m.source = rand.New(rand.NewSource(m.seed))
	return m
}

// GreedyProbability is the chance a playout step prefers a move towards the
// goal row.
func (m *MonteCarlo) GreedyProbability() float64 {
	return m.greedyProbability
}

// Evaluate scores every legal action of p on b and returns the best one
// together with all scores in legal action order. b is only read.
// Cancellation is checked before each candidate's batch of playouts.
func (m *MonteCarlo) Evaluate(ctx context.Context, b *game.Board, p game.Player) (game.Action, []Score, metrics.SearchMetric, error) {
	m.metrics.Start("montecarlo", m.goroutines)

	actions := game.LegalActions(b, p)
	if len(actions) == 0 {
		return game.Action{}, nil, m.metrics.Complete(), game.ErrNoLegalActions
	}
	perAction := max(1, m.simulations/len(actions))

	// One generator per candidate, seeded up front so results do not depend
	// on scheduling
	rng := rand.New(rand.NewSource(m.nextSeed()))
	seeds := make([]uint64, len(actions))
	for i := range seeds {
		seeds[i] = rng.Uint64()
	}

	scores := make([]Score, len(actions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.goroutines)
	for i, action := range actions {
		if gctx.Err() != nil {
			break
		}
		i, action := i, action
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = m.score(b, p, action, perAction, seeds[i])
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	metric := m.metrics.Complete()
	if err != nil {
		return game.Action{}, nil, metric, err
	}

	best := m.selectBest(scores, rng)
	log.Debug().
		Str("player", p.String()).
		Int("candidates", len(actions)).
		Int("per_action", perAction).
		Str("best", scores[best].Action.String()).
		Float64("value", scores[best].Value).
		Msg("monte carlo evaluation complete")
	return scores[best].Action, scores, metric, nil
}

func (m *MonteCarlo) score(b *game.Board, p game.Player, action game.Action, simulations int, seed uint64) Score {
	rng := rand.New(rand.NewSource(seed))

	after := b.Clone()
	after.PlayAs(p, action)
	decisive := after.Winner() == p

	wins := 0
	for s := 0; s < simulations; s++ {
		winner := Playout(after.Clone(), rng, m.greedyProbability, m.playoutCap)
		m.metrics.AddSimulation()
		if winner != game.NoPlayer {
			m.metrics.AddFullPlayout()
		}
		if winner == p {
			wins++
		}
	}
	m.metrics.AddCandidate()

	return Score{
		Action:      action,
		Wins:        wins,
		Simulations: simulations,
		Value:       float64(wins) / float64(simulations),
		Decisive:    decisive,
	}
}

// selectBest returns the first decisive action if there is one, otherwise
// the top value with ties going to the first or a random candidate.
func (m *MonteCarlo) selectBest(scores []Score, rng *rand.Rand) int {
	for i := range scores {
		if scores[i].Decisive {
			return i
		}
	}

	best := 0
	for i := range scores {
		if scores[i].Value > scores[best].Value {
			best = i
		}
	}
	if !m.randomTieBreak {
		return best
	}

	var tied []int
	for i := range scores {
		if scores[i].Value == scores[best].Value {
			tied = append(tied, i)
		}
	}
	return tied[rng.Intn(len(tied))]
}

func (m *MonteCarlo) nextSeed() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source.Uint64()
}
