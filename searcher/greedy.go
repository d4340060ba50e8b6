package searcher

import (
	"quoridor/game"

	"golang.org/x/exp/rand"
)

// GreedyParams tune when the greedy agent prefers a wall over a step.
type GreedyParams struct {
	EmergencyDistance int // opponent this close to its goal triggers the bonus
	EmergencyBonus    int
	AheadThreshold    int // minimum wall gain while strictly ahead on path length
	BehindThreshold   int // minimum wall gain otherwise
}

func DefaultGreedyParams() GreedyParams {
	return GreedyParams{
		EmergencyDistance: 2,
		EmergencyBonus:    100,
		AheadThreshold:    2,
		BehindThreshold:   1,
	}
}

type wallChoice struct {
	wall    game.Wall
	gain    int // opponent distance increase
	ownCost int // own distance increase
}

// Greedy looks one ply ahead with A*. It steps to the neighbour with the
// shortest remaining path, or places the wall that lengthens the opponent's
// path the most when that gain clears the threshold and beats the step. A
// step onto the goal row is always taken.
func Greedy(b *game.Board, p game.Player, rng *rand.Rand, params GreedyParams) (game.Action, error) {
	opp := p.Opponent()
	myPath := game.Distance(b, p)
	oppPath := game.Distance(b, opp)

	moves := game.LegalMoves(b, p)
	walls := game.LegalWalls(b, p)
	if len(moves) == 0 && len(walls) == 0 {
		return game.Action{}, game.ErrNoLegalActions
	}

	move, moveCost := bestStep(b, p, moves, rng)
	if len(moves) > 0 && moveCost == 0 {
		return game.MoveTo(move), nil
	}
	moveBenefit := 0
	if len(moves) > 0 {
		moveBenefit = myPath - moveCost
	}

	wall, found := bestWall(b, p, walls, myPath, oppPath, rng)
	if !found {
		if len(moves) == 0 {
			w := walls[rng.Intn(len(walls))]
			return game.PlaceWall(w.X, w.Y, w.Orientation), nil
		}
		return game.MoveTo(move), nil
	}

	wallBenefit := wall.gain
	boosted := false
	if oppPath <= params.EmergencyDistance && wallBenefit >= 1 {
		wallBenefit = moveBenefit + params.EmergencyBonus
		boosted = true
	}

	threshold := params.BehindThreshold
	if myPath < oppPath {
		threshold = params.AheadThreshold
	}

	effective := boosted || wall.gain >= threshold
	if len(moves) == 0 || (effective && wallBenefit > moveBenefit) {
		return game.PlaceWall(wall.wall.X, wall.wall.Y, wall.wall.Orientation), nil
	}
	return game.MoveTo(move), nil
}

// bestStep returns the move with the smallest resulting A* distance, ties
// broken uniformly at random.
func bestStep(b *game.Board, p game.Player, moves []int, rng *rand.Rand) (int, int) {
	bestCost := game.Unreachable
	var best []int
	for _, k := range moves {
		cost := game.ShortestPath(b, k, b.Goal(p))
		switch {
		case cost < bestCost:
			bestCost = cost
			best = append(best[:0], k)
		case cost == bestCost:
			best = append(best, k)
		}
	}
	if len(best) == 0 {
		return -1, bestCost
	}
	return best[rng.Intn(len(best))], bestCost
}

// bestWall scans the walls in random order and keeps the first one with the
// largest strictly positive gain, preferring walls that cost p less.
func bestWall(b *game.Board, p game.Player, walls []game.Wall, myPath, oppPath int, rng *rand.Rand) (wallChoice, bool) {
	candidates := make([]game.Wall, len(walls))
	copy(candidates, walls)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var best wallChoice
	found := false
	for _, w := range candidates {
		after := b.Clone()
		after.PlayAs(p, game.PlaceWall(w.X, w.Y, w.Orientation))
		choice := wallChoice{
			wall:    w,
			gain:    game.Distance(after, p.Opponent()) - oppPath,
			ownCost: game.Distance(after, p) - myPath,
		}
		if choice.gain <= 0 {
			continue
		}
		if !found || choice.gain > best.gain || (choice.gain == best.gain && choice.ownCost < best.ownCost) {
			best = choice
			found = true
		}
	}
	return best, found
}
