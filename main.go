package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quoridor/communication/server"
	"quoridor/config"
	"quoridor/engine"
	"quoridor/experiments"
	"quoridor/game"
	"quoridor/gamemaster"
	"quoridor/searcher/agent"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "what to run: play, bench, throughput or serve")
	configPath := flag.String("config", "", "path to a YAML config file")
	rounds := flag.Int("rounds", 3, "searches per goroutine count in throughput mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "play":
		err = play(ctx, cfg)
	case "bench":
		var summary experiments.Summary
		summary, err = experiments.RunBenchmark(ctx, cfg)
		summary.Print(os.Stdout)
	case "throughput":
		_, err = experiments.RunThroughput(ctx, cfg, experiments.DefaultGoroutineCounts, *rounds)
	case "serve":
		err = serve(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

// play runs a single game between the configured agents and draws every
// position on stdout.
func play(ctx context.Context, cfg config.Config) error {
	var agents [2]agent.Agent
	var names [2]string
	for p, spec := range cfg.Agents() {
		a, err := agent.New(spec.Kind, spec.Params)
		if err != nil {
			return err
		}
		agents[p] = a
		names[p] = spec.Kind.String()
	}

	board := game.NewBoard(cfg.Layout())
	options := []engine.Option{
		engine.WithMaxMoves(cfg.MaxMoves),
		engine.WithObserver(printEvent(os.Stdout)),
	}
	if cfg.Benchmark.RandomStart {
		seed := cfg.Benchmark.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		options = append(options, engine.WithRandomStart(seed))
	}
	e := engine.NewLocal(board, agents, names, options...)

	renderBoard(os.Stdout, board.Snapshot())
	fmt.Println()
	_, _, _, err := e.Run(ctx)
	return err
}

func serve(ctx context.Context, cfg config.Config) error {
	if cfg.Level() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	hub := server.NewHub()
	gm := gamemaster.NewGameMaster(hub)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(gm, hub),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Msgf("serving games on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
