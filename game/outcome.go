package game

import "fmt"

type Result int

const (
	Ongoing Result = iota
	Won
	Draw
)

func (r Result) String() string {
	switch r {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type Reason int

const (
	NoReason Reason = iota
	ReachedGoal
	Forfeit   // the side to move had no legal action
	MoveLimit // the external move ceiling was hit
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case ReachedGoal:
		return "goal"
	case Forfeit:
		return "forfeit"
	case MoveLimit:
		return "move limit"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type Outcome struct {
	Result Result `json:"result"`
	Winner Player `json:"winner"`
	Reason Reason `json:"reason,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Result: Ongoing, Winner: NoPlayer}
}

func WonBy(p Player, reason Reason) Outcome {
	return Outcome{Result: Won, Winner: p, Reason: reason}
}

func DrawBy(reason Reason) Outcome {
	return Outcome{Result: Draw, Winner: NoPlayer, Reason: reason}
}

func (o Outcome) IsTerminal() bool {
	return o.Result != Ongoing
}

func (o Outcome) String() string {
	switch o.Result {
	case Won:
		return fmt.Sprintf("%s won (%s)", o.Winner, o.Reason)
	case Draw:
		return fmt.Sprintf("draw (%s)", o.Reason)
	default:
		return "ongoing"
	}
}

// Status reports whether b is finished by a pawn reaching its goal row.
// Draws and forfeits are decided by whoever drives the game.
func Status(b *Board) Outcome {
	if w := b.Winner(); w != NoPlayer {
		return WonBy(w, ReachedGoal)
	}
	return InProgress()
}
