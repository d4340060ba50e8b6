package game

import (
	"container/heap"
	"math"
)

// Unreachable is the path length reported when no route to the goal row
// exists. It only shows up for hypothetical boards.
const Unreachable = math.MaxInt

type frontierNode struct {
	key int
	g   int
	h   int
	seq int
}

// frontier orders nodes by f = g + h, then by smaller h, then by insertion.
type frontier []frontierNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].g+f[i].h, f[j].g+f[j].h
	if fi != fj {
		return fi < fj
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierNode)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	node := old[n-1]
	*f = old[:n-1]
	return node
}

// ShortestPath runs A* from start to the nearest cell of goalRow using the
// row difference as heuristic. Pawns do not block the search.
func ShortestPath(b *Board, start, goalRow int) int {
	cells := b.size * b.size
	best := make([]int, cells)
	for i := range best {
		best[i] = Unreachable
	}
	closed := make([]bool, cells)

	seq := 0
	open := &frontier{}
	heap.Push(open, frontierNode{key: start, g: 0, h: abs(b.Row(start) - goalRow), seq: seq})
	best[start] = 0

	for open.Len() > 0 {
		node := heap.Pop(open).(frontierNode)
		if closed[node.key] {
			continue
		}
		if b.Row(node.key) == goalRow {
			return node.g
		}
		closed[node.key] = true

		x, y := b.XY(node.key)
		for _, d := range directions {
			nx, ny := x+d[0], y+d[1]
			if !b.InBounds(nx, ny) {
				continue
			}
			next := b.Key(nx, ny)
			if closed[next] || !b.IsEdge(node.key, next) {
				continue
			}
			g := node.g + 1
			if g >= best[next] {
				continue
			}
			best[next] = g
			seq++
			heap.Push(open, frontierNode{key: next, g: g, h: abs(ny - goalRow), seq: seq})
		}
	}
	return Unreachable
}

// Distance is the A* distance from p's pawn to p's goal row.
func Distance(b *Board, p Player) int {
	return ShortestPath(b, b.pawns[p].K, b.goals[p])
}

// RowDistance is the raw number of rows between p and its goal row,
// ignoring walls.
func RowDistance(b *Board, p Player) int {
	return RowGap(b.pawns[p].Y, b.goals[p])
}

// RowGap is the number of rows between row and goal.
func RowGap(row, goal int) int {
	return abs(row - goal)
}
