package engine

import (
	"context"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
)

// MaxMoves is the default ceiling on committed actions before a game is
// declared drawn.
const MaxMoves = 200

type Engine interface {
	// Run plays till a pawn reaches its goal row, a side forfeits or the
	// move ceiling is reached
	Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error)
}

// Event describes one committed action, or the forfeit that ended the game.
type Event struct {
	Step    int           `json:"step"`
	Player  game.Player   `json:"player"`
	Action  *game.Action  `json:"action,omitempty"`
	Think   time.Duration `json:"think"`
	Board   game.Snapshot `json:"board"`
	Outcome game.Outcome  `json:"outcome"`
}

type Observer func(Event)
