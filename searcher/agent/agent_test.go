package agent

import (
	"context"
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for name, expected := range map[string]Kind{
			"greedy":     GreedyPathSearch,
			"astar":      GreedyPathSearch,
			"montecarlo": MonteCarlo,
			"mc":         MonteCarlo,
			"random":     UniformRandom,
			"biased":     BiasedRandom,
		} {
			got, err := ParseKind(name)
			require.NoError(t, err, "Parsing %q should succeed", name)
			require.Equal(t, expected, got, "Parsing %q", name)
		}
	})

	t.Run("round trip through text", func(t *testing.T) {
		for _, kind := range []Kind{GreedyPathSearch, MonteCarlo, UniformRandom, BiasedRandom} {
			text, err := kind.MarshalText()
			require.NoError(t, err)
			var got Kind
			require.NoError(t, got.UnmarshalText(text))
			require.Equal(t, kind, got)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseKind("minimax")
		require.Error(t, err)
	})
}

func TestDecide(t *testing.T) {
	nearGoal := func() *game.Board {
		layout := game.DefaultLayout(5, 3)
		layout.Start = [2][2]int{{2, 1}, {4, 3}}
		return game.NewBoard(layout)
	}

	t.Run("monte carlo finds the winning step", func(t *testing.T) {
		b := nearGoal()
		params := DefaultParams()
		params.Simulations = 100
		params.Goroutines = 2
		params.Seed = 7

		action, err := Decide(context.Background(), b, game.Player0, MonteCarlo, params)

		require.NoError(t, err)
		require.Equal(t, game.MoveTo(b.Key(2, 0)), action)
	})

	t.Run("greedy finds the winning step", func(t *testing.T) {
		b := nearGoal()

		action, err := Decide(context.Background(), b, game.Player0, GreedyPathSearch, Params{Seed: 1})

		require.NoError(t, err)
		require.Equal(t, game.MoveTo(b.Key(2, 0)), action)
	})

	t.Run("random returns a legal action", func(t *testing.T) {
		b, first := game.NewGame(5, 3)

		action, err := Decide(context.Background(), b, first, UniformRandom, Params{Seed: 3})

		require.NoError(t, err)
		require.True(t, game.IsLegal(b, first, action))
	})

	t.Run("biased random takes the winning step", func(t *testing.T) {
		layout := game.DefaultLayout(5, 0)
		layout.Start = [2][2]int{{2, 1}, {4, 3}}
		b := game.NewBoard(layout)

		action, err := Decide(context.Background(), b, game.Player0, BiasedRandom, Params{Seed: 4})

		require.NoError(t, err)
		require.Equal(t, game.MoveTo(b.Key(2, 0)), action)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		b, first := game.NewGame(5, 3)

		_, err := Decide(context.Background(), b, first, Kind(9), DefaultParams())

		require.Error(t, err)
	})

	t.Run("cancelled context is reported", func(t *testing.T) {
		b, first := game.NewGame(5, 3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for _, kind := range []Kind{GreedyPathSearch, MonteCarlo, UniformRandom, BiasedRandom} {
			params := DefaultParams()
			params.Seed = 1
			_, err := Decide(ctx, b, first, kind, params)
			require.ErrorIs(t, err, context.Canceled, "%s should honour cancellation", kind)
		}
	})

	t.Run("metrics are reported", func(t *testing.T) {
		b := nearGoal()
		a, err := New(MonteCarlo, Params{Simulations: 50, Goroutines: 1, Seed: 2, Metrics: true})
		require.NoError(t, err)

		_, metric, err := a.FindAction(context.Background(), b, game.Player0)

		require.NoError(t, err)
		require.Equal(t, MonteCarlo.String(), metric.Agent)
		require.Positive(t, metric.Simulations)
	})
}

func TestParams(t *testing.T) {
	t.Run("rollout probability is passed through as configured", func(t *testing.T) {
		params := DefaultParams()
		require.Equal(t, 0.8, newMonteCarlo(params).GreedyProbability())

		params.GreedyProbability = 0
		require.Zero(t, newMonteCarlo(params).GreedyProbability(), "Pure random rollouts should be kept")

		params.GreedyProbability = 0.3
		require.Equal(t, 0.3, newMonteCarlo(params).GreedyProbability())
	})

	t.Run("invalid values are rejected before reaching the searcher", func(t *testing.T) {
		for name, params := range map[string]Params{
			"probability above one": {GreedyProbability: 2},
			"negative probability":  {GreedyProbability: -0.1},
			"negative simulations":  {Simulations: -1},
			"negative goroutines":   {Goroutines: -4},
			"negative playout cap":  {PlayoutCap: -1},
		} {
			require.Error(t, params.Validate(), name)
			require.NotPanics(t, func() {
				_, err := New(MonteCarlo, params)
				require.Error(t, err, name)
			}, name)
		}
		require.NoError(t, DefaultParams().Validate())
	})
}
