package game

import (
	"fmt"
	"sort"
)

// LegalMoves returns the cells p's pawn may move to, in ascending key order.
// A step onto the opponent becomes a straight jump over it when the cell
// beyond is reachable, and otherwise a diagonal jump to either side of it.
func LegalMoves(b *Board, p Player) []int {
	pos := b.pawns[p]
	opp := b.pawns[p.Opponent()].K

	seen := make(map[int]struct{}, 5)
	add := func(k int) {
		seen[k] = struct{}{}
	}

	for _, d := range directions {
		nx, ny := pos.X+d[0], pos.Y+d[1]
		if !b.InBounds(nx, ny) {
			continue
		}
		next := b.Key(nx, ny)
		if !b.IsEdge(pos.K, next) {
			continue
		}
		if next != opp {
			add(next)
			continue
		}

		// Opponent in the way: straight jump first, diagonals only if blocked
		bx, by := nx+d[0], ny+d[1]
		if b.InBounds(bx, by) && b.IsEdge(opp, b.Key(bx, by)) {
			add(b.Key(bx, by))
			continue
		}
		for _, side := range [2][2]int{{d[1], d[0]}, {-d[1], -d[0]}} {
			sx, sy := nx+side[0], ny+side[1]
			if b.InBounds(sx, sy) && b.IsEdge(opp, b.Key(sx, sy)) {
				add(b.Key(sx, sy))
			}
		}
	}

	moves := make([]int, 0, len(seen))
	for k := range seen {
		moves = append(moves, k)
	}
	sort.Ints(moves)
	return moves
}

// LegalWalls returns every wall p may place. Slots are visited column by
// column, vertical before horizontal at each anchor.
func LegalWalls(b *Board, p Player) []Wall {
	if b.budget[p] <= 0 {
		return nil
	}
	var walls []Wall
	for x := 0; x < b.size-1; x++ {
		for y := 0; y < b.size-1; y++ {
			for _, o := range [2]Orientation{Vertical, Horizontal} {
				w := Wall{X: x, Y: y, Orientation: o}
				if wallFits(b, w) && keepsPaths(b, w) {
					walls = append(walls, w)
				}
			}
		}
	}
	return walls
}

// LegalActions lists p's moves followed by p's walls.
func LegalActions(b *Board, p Player) []Action {
	moves := LegalMoves(b, p)
	walls := LegalWalls(b, p)
	actions := make([]Action, 0, len(moves)+len(walls))
	for _, k := range moves {
		actions = append(actions, MoveTo(k))
	}
	for _, w := range walls {
		actions = append(actions, PlaceWall(w.X, w.Y, w.Orientation))
	}
	return actions
}

func IsLegal(b *Board, p Player, a Action) bool {
	return illegalReason(b, p, a) == ""
}

// illegalReason explains why a is not legal for p, or returns "".
func illegalReason(b *Board, p Player, a Action) string {
	if !p.Valid() {
		return fmt.Sprintf("unknown player %d", p)
	}
	switch a.Type {
	case MoveAction:
		for _, k := range LegalMoves(b, p) {
			if k == a.Target {
				return ""
			}
		}
		return fmt.Sprintf("cell %d is not reachable from %d", a.Target, b.pawns[p].K)
	case WallAction:
		switch {
		case b.budget[p] <= 0:
			return "no walls left"
		case !wallFits(b, a.Wall):
			return fmt.Sprintf("slot %s is blocked", a.Wall)
		case !keepsPaths(b, a.Wall):
			return fmt.Sprintf("wall %s cuts a player off from its goal", a.Wall)
		}
		return ""
	default:
		return fmt.Sprintf("unknown action type %d", a.Type)
	}
}

// wallFits checks the slot itself: on the board, not taken in either
// orientation and not overlapping a parallel neighbour.
func wallFits(b *Board, w Wall) bool {
	if !w.Orientation.Valid() || !b.slotInBounds(w.X, w.Y) {
		return false
	}
	if b.SlotOwner(Wall{X: w.X, Y: w.Y, Orientation: Horizontal}) != NoPlayer ||
		b.SlotOwner(Wall{X: w.X, Y: w.Y, Orientation: Vertical}) != NoPlayer {
		return false
	}
	var neighbours [2]Wall
	if w.Orientation == Vertical {
		neighbours = [2]Wall{{w.X, w.Y - 1, Vertical}, {w.X, w.Y + 1, Vertical}}
	} else {
		neighbours = [2]Wall{{w.X - 1, w.Y, Horizontal}, {w.X + 1, w.Y, Horizontal}}
	}
	for _, n := range neighbours {
		if b.SlotOwner(n) != NoPlayer {
			return false
		}
	}
	return true
}

// keepsPaths reports whether both players can still reach their goal rows
// once w is in place. The board is only read: the two edges w would sever
// are treated as blocked during the search.
func keepsPaths(b *Board, w Wall) bool {
	blocked := b.wallEdges(w)
	for _, p := range [2]Player{Player0, Player1} {
		if !reachesRow(b, b.pawns[p].K, b.goals[p], blocked) {
			return false
		}
	}
	return true
}

// HasPath reports whether start is connected to any cell of goalRow.
func HasPath(b *Board, start, goalRow int) bool {
	return reachesRow(b, start, goalRow, [2][2]int{{-1, -1}, {-1, -1}})
}

func reachesRow(b *Board, start, goalRow int, blocked [2][2]int) bool {
	isBlocked := func(k1, k2 int) bool {
		for _, e := range blocked {
			if (e[0] == k1 && e[1] == k2) || (e[0] == k2 && e[1] == k1) {
				return true
			}
		}
		return false
	}

	visited := make([]bool, b.size*b.size)
	queue := make([]int, 0, b.size*b.size)
	queue = append(queue, start)
	visited[start] = true
	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		if b.Row(k) == goalRow {
			return true
		}
		x, y := b.XY(k)
		for _, d := range directions {
			nx, ny := x+d[0], y+d[1]
			if !b.InBounds(nx, ny) {
				continue
			}
			next := b.Key(nx, ny)
			if visited[next] || !b.IsEdge(k, next) || isBlocked(k, next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}
