package game

import "fmt"

// ActionType represents the kind of action a player can perform.
type ActionType int

const (
	MoveAction ActionType = iota
	WallAction
)

func (t ActionType) String() string {
	switch t {
	case MoveAction:
		return "move"
	case WallAction:
		return "wall"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

func (t ActionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ActionType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "move":
		*t = MoveAction
	case "wall":
		*t = WallAction
	default:
		return fmt.Errorf("unknown action type %q", text)
	}
	return nil
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "horizontal", "h":
		*o = Horizontal
	case "vertical", "v":
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %q", text)
	}
	return nil
}

// Wall is anchored at the lower-left intersection (X, Y) of the 2x2 block of
// cells it separates. A vertical wall splits column X from X+1 across rows Y
// and Y+1; a horizontal wall splits row Y from Y+1 across columns X and X+1.
type Wall struct {
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Orientation Orientation `json:"orientation"`
}

func (w Wall) String() string {
	return fmt.Sprintf("%s(%d,%d)", w.Orientation, w.X, w.Y)
}
