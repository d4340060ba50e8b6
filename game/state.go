package game

import "fmt"

// Board is the authoritative game state: the cell graph, both wall grids,
// pawn positions, wall budgets and the side to move. It is mutated in place
// by committed actions; searches work on clones.
type Board struct {
	size    int
	wallMax int
	edges   []bool      // (size*size)^2 adjacency matrix, always symmetric
	walls   [2][]Player // per Orientation, (size-1)^2 slots
	pawns   [2]Pawn
	budget  [2]int
	goals   [2]int
	turn    Player
	moves   int
}

// NewBoard builds the initial position of layout with player0 to move. It
// panics on an invalid layout; use Layout.Validate first for untrusted input.
func NewBoard(layout Layout) *Board {
	if err := layout.Validate(); err != nil {
		panic(fmt.Sprintf("invalid layout: %v", err))
	}

	n := layout.Size
	cells := n * n
	b := &Board{
		size:    n,
		wallMax: layout.WallMax,
		edges:   make([]bool, cells*cells),
		budget:  [2]int{layout.WallMax, layout.WallMax},
		goals:   layout.Goal,
		turn:    Player0,
	}
	for o := range b.walls {
		b.walls[o] = make([]Player, (n-1)*(n-1))
		for i := range b.walls[o] {
			b.walls[o][i] = NoPlayer
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				b.restoreEdge(b.Key(x, y), b.Key(x+1, y))
			}
			if y+1 < n {
				b.restoreEdge(b.Key(x, y), b.Key(x, y+1))
			}
		}
	}
	for p, start := range layout.Start {
		b.pawns[p] = b.pawnAt(b.Key(start[0], start[1]))
	}
	return b
}

// NewGame creates the standard symmetric position on an n x n board. The
// caller may hand the first turn to the other side with SetTurn before play.
func NewGame(n, wallMax int) (*Board, Player) {
	b := NewBoard(DefaultLayout(n, wallMax))
	return b, b.turn
}

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	c := *b
	c.edges = make([]bool, len(b.edges))
	copy(c.edges, b.edges)
	for o := range b.walls {
		c.walls[o] = make([]Player, len(b.walls[o]))
		copy(c.walls[o], b.walls[o])
	}
	return &c
}

func (b *Board) Turn() Player {
	return b.turn
}

// SetTurn hands the move to p. Only meant for choosing the first mover.
func (b *Board) SetTurn(p Player) {
	if !p.Valid() {
		panic(fmt.Sprintf("invalid player %d", p))
	}
	b.turn = p
}

func (b *Board) Position(p Player) Pawn {
	return b.pawns[p]
}

func (b *Board) WallsRemaining(p Player) int {
	return b.budget[p]
}

func (b *Board) WallMax() int {
	return b.wallMax
}

func (b *Board) Goal(p Player) int {
	return b.goals[p]
}

// Moves counts the actions committed so far.
func (b *Board) Moves() int {
	return b.moves
}

// Winner returns the player standing on its goal row, or NoPlayer.
func (b *Board) Winner() Player {
	for _, p := range [2]Player{Player0, Player1} {
		if b.pawns[p].Y == b.goals[p] {
			return p
		}
	}
	return NoPlayer
}

// Apply commits a for the side to move after checking it against the
// current position. The board is left untouched on error.
func (b *Board) Apply(a Action) error {
	if w := b.Winner(); w != NoPlayer {
		return &IllegalActionError{Player: b.turn, Action: a, Reason: fmt.Sprintf("game already won by %s", w)}
	}
	if reason := illegalReason(b, b.turn, a); reason != "" {
		return &IllegalActionError{Player: b.turn, Action: a, Reason: reason}
	}
	b.Play(a)
	return nil
}

// Play commits a for the side to move without checking legality.
func (b *Board) Play(a Action) {
	b.PlayAs(b.turn, a)
}

// PlayAs commits a for p without checking legality and hands the turn to
// p's opponent. Placing a wall without budget or on an occupied slot panics.
func (b *Board) PlayAs(p Player, a Action) {
	switch a.Type {
	case MoveAction:
		if a.Target < 0 || a.Target >= b.size*b.size {
			panic(fmt.Sprintf("move target %d is off the board", a.Target))
		}
		b.pawns[p] = b.pawnAt(a.Target)
	case WallAction:
		b.placeWall(a.Wall, p)
	default:
		panic(fmt.Sprintf("unexpected action type %d", a.Type))
	}
	b.turn = p.Opponent()
	b.moves++
}

func (b *Board) placeWall(w Wall, p Player) {
	if b.budget[p] <= 0 {
		panic(fmt.Sprintf("%s has no walls left", p))
	}
	if !w.Orientation.Valid() || !b.slotInBounds(w.X, w.Y) {
		panic(fmt.Sprintf("wall %s is off the board", w))
	}
	if b.SlotOwner(w) != NoPlayer {
		panic(fmt.Sprintf("wall slot %s is already taken", w))
	}
	for _, e := range b.wallEdges(w) {
		b.cutEdge(e[0], e[1])
	}
	b.walls[w.Orientation][b.slotIndex(w.X, w.Y)] = p
	b.budget[p]--
}

// PlacedWalls lists every committed wall in slot order.
func (b *Board) PlacedWalls() []PlacedWall {
	var placed []PlacedWall
	for y := 0; y < b.size-1; y++ {
		for x := 0; x < b.size-1; x++ {
			for _, o := range [2]Orientation{Horizontal, Vertical} {
				w := Wall{X: x, Y: y, Orientation: o}
				if owner := b.SlotOwner(w); owner != NoPlayer {
					placed = append(placed, PlacedWall{Wall: w, Owner: owner})
				}
			}
		}
	}
	return placed
}

type PlacedWall struct {
	Wall
	Owner Player `json:"owner"`
}
