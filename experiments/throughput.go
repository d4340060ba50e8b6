package experiments

import (
	"context"
	"fmt"
	"time"

	"quoridor/config"
	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
)

var DefaultGoroutineCounts = []int{1, 2, 4, 8, 16}

// RunThroughput times one Monte-Carlo decision on the opening position for
// each goroutine count, using player 1's search parameters otherwise. Each
// count is measured rounds times.
func RunThroughput(ctx context.Context, cfg config.Config, goroutines []int, rounds int) ([]metrics.ThroughputRecord, error) {
	if rounds <= 0 {
		rounds = 1
	}
	params := cfg.Player1.Params
	params.Metrics = true

	records := []metrics.ThroughputRecord{}
	log.Info().Msgf("starting throughput experiment over %v goroutines...", goroutines)

	for _, n := range goroutines {
		params.Goroutines = n
		for round := 0; round < rounds; round++ {
			a, err := agent.New(agent.MonteCarlo, params)
			if err != nil {
				return records, fmt.Errorf("failed to create agent: %w", err)
			}

			b := game.NewBoard(cfg.Layout())
			start := time.Now()
			_, metric, err := a.FindAction(ctx, b, b.Turn())
			if err != nil {
				return records, fmt.Errorf("search with %d goroutines failed: %w", n, err)
			}
			elapsed := time.Since(start)

			records = append(records, metrics.ThroughputRecord{
				Goroutines:  n,
				Round:       round + 1,
				Duration:    elapsed,
				Simulations: metric.Simulations,
				PerSecond:   float64(metric.Simulations) / elapsed.Seconds(),
			})
		}
		log.Info().Msgf("completed %d goroutines", n)
	}

	if cfg.Benchmark.OutputDir != "" {
		writer, err := metrics.NewWriter(cfg.Benchmark.OutputDir, "throughput")
		if err != nil {
			return records, fmt.Errorf("failed to create experiment writer: %w", err)
		}
		if err := writer.WriteThroughputRecords(records); err != nil {
			return records, err
		}
		log.Info().Msgf("stored throughput records in %s", writer.Dir())
	}
	return records, nil
}
