package game

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	DefaultSize  = 5
	DefaultWalls = 3
)

// Player identifies one of the two sides. NoPlayer doubles as the draw
// sentinel wherever a winner is reported.
type Player int

const (
	NoPlayer Player = iota - 1
	Player0
	Player1
)

func (p Player) Opponent() Player {
	switch p {
	case Player0:
		return Player1
	case Player1:
		return Player0
	default:
		panic(fmt.Sprintf("no opponent for player %d", p))
	}
}

func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

func (p Player) String() string {
	switch p {
	case Player0:
		return "player0"
	case Player1:
		return "player1"
	default:
		return "none"
	}
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
