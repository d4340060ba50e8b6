package searcher

import (
	"testing"

	"quoridor/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPlayout(t *testing.T) {
	t.Run("finished board returns the winner immediately", func(t *testing.T) {
		b := nearGoalBoard()
		b.Play(game.MoveTo(b.Key(2, 0)))
		before := b.Clone()

		winner := Playout(b, rand.New(rand.NewSource(1)), 0.8, 100)

		require.Equal(t, game.Player0, winner)
		require.Equal(t, before, b, "No action should be applied after the goal is reached")
	})

	t.Run("always terminates within the cap", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for _, p := range []float64{0, 0.3, 0.8, 1} {
			for i := 0; i < 30; i++ {
				b, _ := game.NewGame(5, 3)

				winner := Playout(b, rng, p, 100)

				require.LessOrEqual(t, b.Moves(), 100, "Playout should stop at the cap")
				switch {
				case winner == game.NoPlayer:
					require.Equal(t, 100, b.Moves(), "A draw is only reported at the cap")
				case b.Winner() != game.NoPlayer:
					require.Equal(t, b.Winner(), winner, "Reported winner should stand on its goal row")
				default:
					require.Equal(t, b.Turn().Opponent(), winner, "A forfeit goes to the side not to move")
				}
			}
		}
	})

	t.Run("zero cap is an immediate draw", func(t *testing.T) {
		b, _ := game.NewGame(5, 3)

		require.Equal(t, game.NoPlayer, Playout(b, rand.New(rand.NewSource(3)), 0.8, 0))
	})

	t.Run("fully greedy rollout walks straight to the goal", func(t *testing.T) {
		layout := game.DefaultLayout(5, 0)
		layout.Start = [2][2]int{{0, 4}, {4, 0}}
		b := game.NewBoard(layout)

		winner := Playout(b, rand.New(rand.NewSource(4)), 1, 100)

		require.Equal(t, game.Player0, winner, "Moving first with only improving steps should win the race")
		require.Equal(t, 7, b.Moves(), "Four steps for player0 and three for player1")
	})
}

func TestImprovingMoves(t *testing.T) {
	b, _ := game.NewGame(5, 3)

	require.Equal(t, []int{b.Key(2, 3)}, improvingMoves(b, game.Player0), "Only the forward step reduces the row gap")
	require.Equal(t, []int{b.Key(2, 1)}, improvingMoves(b, game.Player1))
}
