package searcher

import (
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBiasedRandom(t *testing.T) {
	t.Run("goal row is taken when reachable", func(t *testing.T) {
		layout := game.DefaultLayout(5, 0)
		layout.Start = [2][2]int{{2, 1}, {4, 3}}
		b := game.NewBoard(layout)
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 20; i++ {
			action, err := BiasedRandom(b, game.Player0, rng)
			require.NoError(t, err)
			require.Equal(t, game.MoveTo(b.Key(2, 0)), action)
		}
	})

	t.Run("without walls it steps toward the goal", func(t *testing.T) {
		b, _ := game.NewGame(5, 0)
		rng := rand.New(rand.NewSource(2))

		for _, p := range []game.Player{game.Player0, game.Player1} {
			action, err := BiasedRandom(b, p, rng)
			require.NoError(t, err)
			require.True(t, action.IsMove())
			require.Less(t, game.RowGap(b.Row(action.Target), b.Goal(p)), game.RowDistance(b, p))
		}
	})

	t.Run("closest moves are tied at random", func(t *testing.T) {
		// Player0 spends its only wall in front of itself and must go sideways
		b, _ := game.NewGame(5, 1)
		b.PlayAs(game.Player0, game.PlaceWall(1, 3, game.Horizontal))
		rng := rand.New(rand.NewSource(3))
		seen := map[game.Action]bool{}

		for i := 0; i < 100; i++ {
			action, err := BiasedRandom(b, game.Player0, rng)
			require.NoError(t, err)
			seen[action] = true
		}

		require.Equal(t, map[game.Action]bool{
			game.MoveTo(b.Key(1, 4)): true,
			game.MoveTo(b.Key(3, 4)): true,
		}, seen)
	})

	t.Run("opening mixes walls and moves", func(t *testing.T) {
		b, _ := game.NewGame(5, 3)
		rng := rand.New(rand.NewSource(4))
		var walls, moves int

		for i := 0; i < 200; i++ {
			action, err := BiasedRandom(b, game.Player0, rng)
			require.NoError(t, err)
			require.True(t, game.IsLegal(b, game.Player0, action), "%s should be legal", action)
			if action.IsMove() {
				moves++
			} else {
				walls++
			}
		}

		require.Positive(t, walls)
		require.Positive(t, moves)
	})

	t.Run("full games only play legal actions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 10; i++ {
			b, _ := game.NewGame(5, 3)
			for ply := 0; ply < 200 && b.Winner() == game.NoPlayer; ply++ {
				p := b.Turn()
				action, err := BiasedRandom(b, p, rng)
				require.NoError(t, err)
				require.NoError(t, b.Apply(action))
			}
		}
	})

	t.Run("same seed gives the same actions", func(t *testing.T) {
		play := func() []game.Action {
			b, _ := game.NewGame(5, 3)
			rng := rand.New(rand.NewSource(6))
			var actions []game.Action
			for ply := 0; ply < 20 && b.Winner() == game.NoPlayer; ply++ {
				action, err := BiasedRandom(b, b.Turn(), rng)
				require.NoError(t, err)
				b.Play(action)
				actions = append(actions, action)
			}
			return actions
		}

		require.Equal(t, play(), play())
	})
}

func TestRandomWall(t *testing.T) {
	t.Run("finds a legal slot on an open board", func(t *testing.T) {
		b, _ := game.NewGame(5, 3)

		action, ok := randomWall(b, game.Player0, rand.New(rand.NewSource(7)), fallbackAttempts)

		require.True(t, ok)
		require.False(t, action.IsMove())
		require.True(t, game.IsLegal(b, game.Player0, action))
	})

	t.Run("no walls left gives up", func(t *testing.T) {
		b, _ := game.NewGame(5, 0)

		_, ok := randomWall(b, game.Player0, rand.New(rand.NewSource(8)), fallbackAttempts)

		require.False(t, ok)
	})
}
