package experiments

import (
	"context"
	"fmt"
	"io"
	"time"

	"quoridor/config"
	"quoridor/engine"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher/agent"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
)

// Summary aggregates the games of one benchmark run.
type Summary struct {
	Names    [2]string
	Games    int
	Wins     [2]int
	Draws    int
	Forfeits int
	Moves    int
	// Think is the total time each player spent choosing its actions, and
	// Decisions the number of actions it chose.
	Think     [2]time.Duration
	Decisions [2]int
	Dir       string // where the records were written, empty if not stored
}

func (s Summary) AverageMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Moves) / float64(s.Games)
}

func (s Summary) AverageThink(p game.Player) time.Duration {
	if s.Decisions[p] == 0 {
		return 0
	}
	return s.Think[p] / time.Duration(s.Decisions[p])
}

func (s *Summary) add(outcome game.Outcome, moves []metrics.MoveMetric, total int) {
	s.Games++
	s.Moves += total
	switch outcome.Result {
	case game.Won:
		s.Wins[outcome.Winner]++
		if outcome.Reason == game.Forfeit {
			s.Forfeits++
		}
	case game.Draw:
		s.Draws++
	}
	for _, mm := range moves {
		s.Think[mm.Player] += mm.Duration
		s.Decisions[mm.Player]++
	}
}

func (s Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "%s %s vs %s over %d games\n",
		aurora.Bold("benchmark:"), aurora.Cyan(s.Names[0]), aurora.Magenta(s.Names[1]), s.Games)
	for p := game.Player0; p <= game.Player1; p++ {
		fmt.Fprintf(w, "  %s (%s): %s wins, %v per action\n",
			p, s.Names[p], aurora.Green(s.Wins[p]), s.AverageThink(p).Round(time.Microsecond))
	}
	fmt.Fprintf(w, "  draws: %s, forfeits: %d\n", aurora.Yellow(s.Draws), s.Forfeits)
	fmt.Fprintf(w, "  average game length: %.1f moves\n", s.AverageMoves())
	if s.Dir != "" {
		fmt.Fprintf(w, "  records: %s\n", s.Dir)
	}
}

// RunBenchmark plays cfg.Benchmark.Games games between the two configured
// agents and stores the records under cfg.Benchmark.OutputDir when set.
// Seeded agents get a different seed for every game.
func RunBenchmark(ctx context.Context, cfg config.Config) (Summary, error) {
	specs := cfg.Agents()
	summary := Summary{Names: [2]string{specs[0].Kind.String(), specs[1].Kind.String()}}
	configs := []metrics.AgentConfig{agentConfig(1, specs[0].Kind, specs[0].Params), agentConfig(2, specs[1].Kind, specs[1].Params)}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting benchmark of %d games between %s and %s...", cfg.Benchmark.Games, summary.Names[0], summary.Names[1])

	for i := 0; i < cfg.Benchmark.Games; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		e, err := newGame(cfg, i)
		if err != nil {
			return summary, err
		}
		outcome, gameMetric, moveMetrics, err := e.Run(ctx)
		if err != nil {
			return summary, fmt.Errorf("game %d failed: %w", i+1, err)
		}

		summary.add(outcome, moveMetrics, gameMetric.TotalMoves)
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     configs[0].ID,
			Agent2:     configs[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Debug().Msgf("completed game %d of %d: %s", i+1, cfg.Benchmark.Games, outcome)
	}

	log.Info().Msgf("completed benchmark: %v wins, %d draws", summary.Wins, summary.Draws)

	if cfg.Benchmark.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg, configs, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func newGame(cfg config.Config, i int) (*engine.Local, error) {
	var agents [2]agent.Agent
	var names [2]string
	for p, spec := range cfg.Agents() {
		params := spec.Params
		params.Seed = gameSeed(params.Seed, i)
		params.Metrics = true
		a, err := agent.New(spec.Kind, params)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent for %s: %w", game.Player(p), err)
		}
		agents[p] = a
		names[p] = spec.Kind.String()
	}

	options := []engine.Option{engine.WithMaxMoves(cfg.MaxMoves)}
	if cfg.Benchmark.RandomStart {
		seed := gameSeed(cfg.Benchmark.Seed, i)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		options = append(options, engine.WithRandomStart(seed))
	}
	return engine.NewLocal(game.NewBoard(cfg.Layout()), agents, names, options...), nil
}

// gameSeed keeps a zero seed zero so the agent still seeds from the clock.
func gameSeed(seed uint64, i int) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + uint64(i)
}

func agentConfig(id int, kind agent.Kind, params agent.Params) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:                id,
		Kind:              kind.String(),
		Simulations:       params.Simulations,
		Goroutines:        params.Goroutines,
		GreedyProbability: params.GreedyProbability,
		PlayoutCap:        params.PlayoutCap,
		Seed:              params.Seed,
	}
}

func store(cfg config.Config, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.Benchmark.OutputDir, cfg.Benchmark.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	if cfg.Benchmark.Charts {
		if err := writer.WriteCharts(configs, games, moves); err != nil {
			return "", err
		}
		log.Info().Msg("stored charts")
	}
	return writer.Dir(), nil
}
