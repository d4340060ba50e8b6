package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortestPath(t *testing.T) {
	t.Run("empty board distance is the row difference", func(t *testing.T) {
		b, _ := NewGame(5, 3)
		for k := 0; k < 25; k++ {
			for goal := 0; goal < 5; goal++ {
				require.Equal(t, abs(b.Row(k)-goal), ShortestPath(b, k, goal),
					"Distance from %d to row %d should be the row difference", k, goal)
			}
		}
	})

	t.Run("walls force a detour", func(t *testing.T) {
		b, _ := NewGame(5, 3)
		b.Play(PlaceWall(1, 3, Horizontal))

		require.Equal(t, 5, Distance(b, Player0), "Player0 should sidestep the wall")
		require.Equal(t, 5, Distance(b, Player1), "Player1 also needs one sidestep around the wall")
		require.Equal(t, 4, RowDistance(b, Player0), "Row distance ignores walls")
	})

	t.Run("row gap is symmetric", func(t *testing.T) {
		require.Equal(t, 3, RowGap(4, 1))
		require.Equal(t, 3, RowGap(1, 4))
		require.Zero(t, RowGap(2, 2))

		b, _ := NewGame(5, 3)
		for _, p := range []Player{Player0, Player1} {
			require.Equal(t, RowGap(b.Position(p).Y, b.Goal(p)), RowDistance(b, p))
		}
	})

	t.Run("severed board is unreachable", func(t *testing.T) {
		b, _ := NewGame(5, 3)
		for x := 0; x < 5; x++ {
			b.cutEdge(b.Key(x, 1), b.Key(x, 2))
		}

		require.Equal(t, Unreachable, ShortestPath(b, b.Key(2, 4), 0))
		require.False(t, HasPath(b, b.Key(2, 4), 0))
		require.Equal(t, 2, ShortestPath(b, b.Key(2, 4), 2), "Rows on the same side stay reachable")
	})

	t.Run("pawns do not block the search", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{2, 4}, [2]int{2, 3}))

		require.Equal(t, 4, Distance(b, Player0))
	})
}

func TestSnapshot(t *testing.T) {
	b, _ := NewGame(5, 3)
	b.Play(PlaceWall(0, 0, Vertical))

	s := b.Snapshot()

	require.Equal(t, 5, s.Size)
	require.Equal(t, Player1, s.Turn)
	require.Equal(t, [2]int{2, 3}, s.WallsRemaining)
	require.Equal(t, [2]int{4, 4}, s.Distances)
	require.Len(t, s.Walls, 1)
	require.Equal(t, NoPlayer, s.Winner)
}
