package game

import "fmt"

// Action is either a pawn move to Target or a wall placement. Values built
// with MoveTo and PlaceWall are comparable with ==.
type Action struct {
	Type   ActionType `json:"type"`
	Target int        `json:"target"`
	Wall   Wall       `json:"wall"`
}

func MoveTo(k int) Action {
	return Action{Type: MoveAction, Target: k}
}

func PlaceWall(x, y int, o Orientation) Action {
	return Action{Type: WallAction, Wall: Wall{X: x, Y: y, Orientation: o}}
}

func (a Action) IsMove() bool {
	return a.Type == MoveAction
}

func (a Action) String() string {
	if a.Type == WallAction {
		return fmt.Sprintf("wall %s", a.Wall)
	}
	return fmt.Sprintf("move %d", a.Target)
}
