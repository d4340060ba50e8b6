package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalAction  = errors.New("illegal action")
	ErrNoLegalActions = errors.New("no legal actions")
)

// IllegalActionError is returned by Board.Apply when an action is not in the
// current legal set. It matches ErrIllegalAction with errors.Is.
type IllegalActionError struct {
	Player Player
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s by %s: %s", e.Action, e.Player, e.Reason)
}

func (e *IllegalActionError) Unwrap() error {
	return ErrIllegalAction
}
