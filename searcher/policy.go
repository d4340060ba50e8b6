package searcher

import (
	"quoridor/game"

	"golang.org/x/exp/rand"
)

// Playout plays b forward with the rollout policy until a pawn reaches its
// goal row, the side to move has nothing to play, or limit actions have been
// applied. It returns the winner, or game.NoPlayer when the limit is hit.
// b is consumed.
func Playout(b *game.Board, rng *rand.Rand, greedyProbability float64, limit int) game.Player {
	for ply := 0; ; ply++ {
		if winner := b.Winner(); winner != game.NoPlayer {
			return winner
		}
		if ply >= limit {
			return game.NoPlayer
		}

		mover := b.Turn()
		action, ok := rolloutAction(b, mover, rng, greedyProbability)
		if !ok { // Forfeit
			return mover.Opponent()
		}
		b.Play(action)
	}
}

// rolloutAction picks, with probability greedyProbability, a random move
// that brings p closer to its goal row, and otherwise any legal action.
func rolloutAction(b *game.Board, p game.Player, rng *rand.Rand, greedyProbability float64) (game.Action, bool) {
	if rng.Float64() < greedyProbability {
		if improving := improvingMoves(b, p); len(improving) > 0 {
			return game.MoveTo(improving[rng.Intn(len(improving))]), true
		}
	}

	actions := game.LegalActions(b, p)
	if len(actions) == 0 {
		return game.Action{}, false
	}
	return actions[rng.Intn(len(actions))], true
}

// improvingMoves keeps the legal moves that reduce the raw row distance.
func improvingMoves(b *game.Board, p game.Player) []int {
	goal := b.Goal(p)
	current := game.RowDistance(b, p)

	var improving []int
	for _, k := range game.LegalMoves(b, p) {
		if game.RowGap(b.Row(k), goal) < current {
			improving = append(improving, k)
		}
	}
	return improving
}
