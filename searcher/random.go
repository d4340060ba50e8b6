package searcher

import (
	"quoridor/game"

	"golang.org/x/exp/rand"
)

// UniformRandom picks any legal action of p with equal probability.
func UniformRandom(b *game.Board, p game.Player, rng *rand.Rand) (game.Action, error) {
	actions := game.LegalActions(b, p)
	if len(actions) == 0 {
		return game.Action{}, game.ErrNoLegalActions
	}
	return actions[rng.Intn(len(actions))], nil
}

const (
	wallChance       = 0.5
	wallAttempts     = 50
	fallbackAttempts = 1000
)

// BiasedRandom is the light random opponent: half the time it tries a few
// random wall slots, otherwise it steps toward its goal row, taking the goal
// row outright when reachable and breaking ties at random. When the pawn is
// stuck it searches harder for a wall.
func BiasedRandom(b *game.Board, p game.Player, rng *rand.Rand) (game.Action, error) {
	if b.WallsRemaining(p) > 0 && rng.Float64() < wallChance {
		if action, ok := randomWall(b, p, rng, wallAttempts); ok {
			return action, nil
		}
	}
	if action, ok := forwardMove(b, p, rng); ok {
		return action, nil
	}
	if b.WallsRemaining(p) > 0 {
		if action, ok := randomWall(b, p, rng, fallbackAttempts); ok {
			return action, nil
		}
	}
	return game.Action{}, game.ErrNoLegalActions
}

// forwardMove picks among the legal moves closest to p's goal row.
func forwardMove(b *game.Board, p game.Player, rng *rand.Rand) (game.Action, bool) {
	goal := b.Goal(p)
	best := -1
	var tied []int
	for _, k := range game.LegalMoves(b, p) {
		gap := game.RowGap(b.Row(k), goal)
		switch {
		case gap == 0:
			return game.MoveTo(k), true
		case best == -1 || gap < best:
			best = gap
			tied = append(tied[:0], k)
		case gap == best:
			tied = append(tied, k)
		}
	}
	if len(tied) == 0 {
		return game.Action{}, false
	}
	return game.MoveTo(tied[rng.Intn(len(tied))]), true
}

// randomWall draws up to attempts random slots and returns the first legal one.
func randomWall(b *game.Board, p game.Player, rng *rand.Rand, attempts int) (game.Action, bool) {
	slots := b.Size() - 1
	if slots < 1 {
		return game.Action{}, false
	}
	for i := 0; i < attempts; i++ {
		o := game.Horizontal
		if rng.Intn(2) == 0 {
			o = game.Vertical
		}
		action := game.PlaceWall(rng.Intn(slots), rng.Intn(slots), o)
		if game.IsLegal(b, p, action) {
			return action, true
		}
	}
	return game.Action{}, false
}
