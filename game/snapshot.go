package game

// Snapshot is a read-only, serialisable view of a board for observers.
type Snapshot struct {
	Size           int          `json:"size"`
	Turn           Player       `json:"turn"`
	Moves          int          `json:"moves"`
	Pawns          [2]Pawn      `json:"pawns"`
	Goals          [2]int       `json:"goals"`
	WallsRemaining [2]int       `json:"wallsRemaining"`
	Walls          []PlacedWall `json:"walls"`
	Distances      [2]int       `json:"distances"`
	Winner         Player       `json:"winner"`
}

func (b *Board) Snapshot() Snapshot {
	walls := b.PlacedWalls()
	if walls == nil {
		walls = []PlacedWall{}
	}
	return Snapshot{
		Size:           b.size,
		Turn:           b.turn,
		Moves:          b.moves,
		Pawns:          b.pawns,
		Goals:          b.goals,
		WallsRemaining: b.budget,
		Walls:          walls,
		Distances:      [2]int{Distance(b, Player0), Distance(b, Player1)},
		Winner:         b.Winner(),
	}
}
