package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func layoutWith(p0, p1 [2]int) Layout {
	l := DefaultLayout(DefaultSize, DefaultWalls)
	l.Start = [2][2]int{p0, p1}
	return l
}

func keys(b *Board, cells ...[2]int) []int {
	ks := make([]int, 0, len(cells))
	for _, c := range cells {
		ks = append(ks, b.Key(c[0], c[1]))
	}
	return ks
}

func TestLegalMoves(t *testing.T) {
	t.Run("initial position offers two lateral steps and one forward step", func(t *testing.T) {
		b, first := NewGame(5, 3)

		got := LegalMoves(b, first)

		require.Equal(t, Player0, first, "Player0 should move first")
		require.ElementsMatch(t, keys(b, [2]int{1, 4}, [2]int{3, 4}, [2]int{2, 3}), got,
			"Pawn on (2,4) should reach exactly (1,4), (3,4) and (2,3)")
		require.IsIncreasing(t, got, "Moves should be ordered by cell key")
	})

	t.Run("straight jump excludes diagonals", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{2, 3}, [2]int{2, 2}))

		got := LegalMoves(b, Player0)

		require.Equal(t, keys(b, [2]int{2, 1}, [2]int{1, 3}, [2]int{3, 3}, [2]int{2, 4}), got,
			"Only the straight jump should cross the opponent")
		require.NotContains(t, got, b.Key(1, 2), "Diagonal jump should not be offered")
		require.NotContains(t, got, b.Key(3, 2), "Diagonal jump should not be offered")
		require.NotContains(t, got, b.Key(2, 2), "Opponent's cell is never a destination")
	})

	t.Run("wall behind opponent turns the jump into two diagonals", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{2, 3}, [2]int{2, 2}))
		b.PlayAs(Player1, PlaceWall(1, 1, Horizontal))

		got := LegalMoves(b, Player0)

		require.Equal(t, keys(b, [2]int{1, 2}, [2]int{3, 2}, [2]int{1, 3}, [2]int{3, 3}, [2]int{2, 4}), got,
			"Both diagonals should replace the blocked straight jump")
		require.NotContains(t, got, b.Key(2, 1), "Blocked straight jump should not be offered")
	})

	t.Run("board edge behind opponent turns the jump into diagonals", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{2, 1}, [2]int{2, 0}))

		got := LegalMoves(b, Player0)

		require.Equal(t, keys(b, [2]int{1, 0}, [2]int{3, 0}, [2]int{1, 1}, [2]int{3, 1}, [2]int{2, 2}), got,
			"Diagonals should be offered when the jump would leave the board")
	})

	t.Run("diagonal behind a wall is not offered", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{2, 1}, [2]int{2, 0}))
		b.PlayAs(Player1, PlaceWall(2, 0, Vertical))

		got := LegalMoves(b, Player0)

		require.Equal(t, keys(b, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 2}), got,
			"Only the open diagonal should remain and the wall should also block the lateral step")
	})

	t.Run("corner pawn has two steps", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{0, 4}, [2]int{4, 0}))

		got := LegalMoves(b, Player0)

		require.Equal(t, keys(b, [2]int{0, 3}, [2]int{1, 4}), got, "Corner should only have two neighbours")
	})
}

func TestLegalWalls(t *testing.T) {
	t.Run("empty board accepts every slot in both orientations", func(t *testing.T) {
		b, _ := NewGame(5, 3)

		got := LegalWalls(b, Player0)

		require.Len(t, got, 32, "4x4 slots in two orientations should all be legal")
		require.Equal(t, Wall{X: 0, Y: 0, Orientation: Vertical}, got[0], "Vertical walls come first at each anchor")
		require.Equal(t, Wall{X: 0, Y: 0, Orientation: Horizontal}, got[1], "Horizontal follows vertical at the same anchor")
		require.Equal(t, Wall{X: 0, Y: 1, Orientation: Vertical}, got[2], "Anchors advance along y first")
	})

	t.Run("occupied, crossing and abutting slots are rejected", func(t *testing.T) {
		b, _ := NewGame(5, 3)
		require.NoError(t, b.Apply(PlaceWall(1, 1, Horizontal)))

		got := LegalWalls(b, Player1)

		require.NotContains(t, got, Wall{X: 1, Y: 1, Orientation: Horizontal}, "Occupied slot should be rejected")
		require.NotContains(t, got, Wall{X: 1, Y: 1, Orientation: Vertical}, "Crossing wall should be rejected")
		require.NotContains(t, got, Wall{X: 0, Y: 1, Orientation: Horizontal}, "Overlapping parallel wall should be rejected")
		require.NotContains(t, got, Wall{X: 2, Y: 1, Orientation: Horizontal}, "Overlapping parallel wall should be rejected")
		require.Contains(t, got, Wall{X: 3, Y: 1, Orientation: Horizontal}, "Wall two slots away should be accepted")
		require.Contains(t, got, Wall{X: 1, Y: 0, Orientation: Vertical}, "Perpendicular wall on another anchor should be accepted")
		require.Len(t, got, 28, "Exactly four slots should be lost")
	})

	t.Run("wall sealing the last corridor is rejected", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{0, 4}, [2]int{4, 0}))
		require.NoError(t, b.Apply(PlaceWall(0, 2, Horizontal)))
		sealing := Wall{X: 1, Y: 3, Orientation: Vertical}

		got := LegalWalls(b, Player1)

		require.True(t, wallFits(b, sealing), "Slot itself should be free and non-overlapping")
		require.NotContains(t, got, sealing, "Wall enclosing player0 should be rejected")
		require.Contains(t, got, Wall{X: 1, Y: 2, Orientation: Vertical}, "Wall leaving a corridor should be accepted")
		err := b.Apply(PlaceWall(sealing.X, sealing.Y, sealing.Orientation))
		require.ErrorIs(t, err, ErrIllegalAction, "Committing the sealing wall should fail")
	})

	t.Run("no budget means no walls", func(t *testing.T) {
		b := NewBoard(Layout{Size: 5, WallMax: 0, Start: [2][2]int{{2, 4}, {2, 0}}, Goal: [2]int{0, 4}})

		require.Empty(t, LegalWalls(b, Player0), "Player without walls should have no wall placements")
		require.Len(t, LegalActions(b, Player0), 3, "Only the three pawn moves should remain")
	})

	t.Run("legality check leaves the board untouched", func(t *testing.T) {
		b := NewBoard(layoutWith([2]int{0, 4}, [2]int{4, 0}))
		b.PlayAs(Player0, PlaceWall(0, 2, Horizontal))
		before := b.Clone()

		LegalWalls(b, Player1)
		LegalActions(b, Player0)

		require.Equal(t, before, b, "Legal wall generation should not mutate the board")
	})
}

func TestLegalActions(t *testing.T) {
	t.Run("moves precede walls", func(t *testing.T) {
		b, first := NewGame(5, 3)

		got := LegalActions(b, first)

		require.Len(t, got, 35, "Three moves and 32 walls should be legal")
		for i, a := range got[:3] {
			require.Equal(t, MoveAction, a.Type, "Action %d should be a move", i)
		}
		for i, a := range got[3:] {
			require.Equal(t, WallAction, a.Type, "Action %d should be a wall", i+3)
			require.True(t, IsLegal(b, first, a), "Listed wall %s should be legal", a)
		}
	})
}
