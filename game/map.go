package game

import "fmt"

// MaxSize is the largest supported board, the standard Quoridor board. The
// edge matrix grows with the fourth power of the size.
const MaxSize = 9

// Layout fixes the board dimensions, the wall budget and where each player
// starts and must arrive. It never changes during a game.
type Layout struct {
	Size    int       `yaml:"size" json:"size"`
	WallMax int       `yaml:"walls" json:"walls"`
	Start   [2][2]int `yaml:"start" json:"start"` // (x, y) per player
	Goal    [2]int    `yaml:"goal" json:"goal"`   // goal row per player
}

// DefaultLayout places player0 on the middle of the bottom row racing to row
// 0 and player1 on the middle of the top row racing to row size-1.
func DefaultLayout(size, wallMax int) Layout {
	return Layout{
		Size:    size,
		WallMax: wallMax,
		Start:   [2][2]int{{size / 2, size - 1}, {size / 2, 0}},
		Goal:    [2]int{0, size - 1},
	}
}

func (l Layout) Validate() error {
	if l.Size < 2 || l.Size > MaxSize {
		return fmt.Errorf("board size must be within [2, %d], got %d", MaxSize, l.Size)
	}
	if l.WallMax < 0 {
		return fmt.Errorf("wall budget must not be negative, got %d", l.WallMax)
	}
	for p, start := range l.Start {
		if !inBounds(l.Size, start[0], start[1]) {
			return fmt.Errorf("start (%d,%d) of %s is off the board", start[0], start[1], Player(p))
		}
		if l.Goal[p] < 0 || l.Goal[p] >= l.Size {
			return fmt.Errorf("goal row %d of %s is off the board", l.Goal[p], Player(p))
		}
		if start[1] == l.Goal[p] {
			return fmt.Errorf("%s starts on its goal row %d", Player(p), l.Goal[p])
		}
	}
	if l.Start[0] == l.Start[1] {
		return fmt.Errorf("both players start on (%d,%d)", l.Start[0][0], l.Start[0][1])
	}
	return nil
}

// Pawn keeps both coordinates and the cell key; they always agree.
type Pawn struct {
	X int `json:"x"`
	Y int `json:"y"`
	K int `json:"k"`
}

var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

func inBounds(size, x, y int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

func (b *Board) Size() int {
	return b.size
}

// Key maps (x, y) to its cell key x + size*y.
func (b *Board) Key(x, y int) int {
	return x + b.size*y
}

func (b *Board) XY(k int) (int, int) {
	return k % b.size, k / b.size
}

func (b *Board) Row(k int) int {
	return k / b.size
}

func (b *Board) InBounds(x, y int) bool {
	return inBounds(b.size, x, y)
}

func (b *Board) pawnAt(k int) Pawn {
	x, y := b.XY(k)
	return Pawn{X: x, Y: y, K: k}
}

// IsEdge reports whether a pawn may step directly between k1 and k2.
func (b *Board) IsEdge(k1, k2 int) bool {
	cells := b.size * b.size
	if k1 < 0 || k2 < 0 || k1 >= cells || k2 >= cells {
		return false
	}
	return b.edges[k1*cells+k2]
}

func (b *Board) setEdge(k1, k2 int, open bool) {
	cells := b.size * b.size
	b.edges[k1*cells+k2] = open
	b.edges[k2*cells+k1] = open
}

func (b *Board) cutEdge(k1, k2 int) {
	b.setEdge(k1, k2, false)
}

func (b *Board) restoreEdge(k1, k2 int) {
	x1, y1 := b.XY(k1)
	x2, y2 := b.XY(k2)
	if abs(x1-x2)+abs(y1-y2) != 1 {
		panic(fmt.Sprintf("cells %d and %d are not orthogonally adjacent", k1, k2))
	}
	b.setEdge(k1, k2, true)
}

// wallEdges returns the two cell pairs a wall severs.
func (b *Board) wallEdges(w Wall) [2][2]int {
	x, y := w.X, w.Y
	if w.Orientation == Vertical {
		return [2][2]int{
			{b.Key(x, y), b.Key(x+1, y)},
			{b.Key(x, y+1), b.Key(x+1, y+1)},
		}
	}
	return [2][2]int{
		{b.Key(x, y), b.Key(x, y+1)},
		{b.Key(x+1, y), b.Key(x+1, y+1)},
	}
}

func (b *Board) slotIndex(x, y int) int {
	return x + (b.size-1)*y
}

func (b *Board) slotInBounds(x, y int) bool {
	return inBounds(b.size-1, x, y)
}

// SlotOwner returns who placed the wall at w, or NoPlayer when the slot is
// empty or off the board.
func (b *Board) SlotOwner(w Wall) Player {
	if !w.Orientation.Valid() || !b.slotInBounds(w.X, w.Y) {
		return NoPlayer
	}
	return b.walls[w.Orientation][b.slotIndex(w.X, w.Y)]
}
