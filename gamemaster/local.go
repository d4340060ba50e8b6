package gamemaster

import (
	"context"
	"sync"
	"time"

	"quoridor/communication"
	"quoridor/engine"
	"quoridor/game"
)

// Session is one hosted game. All access to its board goes through the
// session lock, so a slow agent blocks readers of the same game only.
type Session struct {
	ID      string
	Created time.Time

	mu          sync.Mutex
	engine      *engine.Local
	settings    Settings
	broadcaster communication.Broadcaster
}

// View is what a spectator sees of a session.
type View struct {
	ID       string        `json:"id"`
	Agents   [2]AgentSpec  `json:"agents"`
	Board    game.Snapshot `json:"board"`
	Outcome  game.Outcome  `json:"outcome"`
	MaxMoves int           `json:"maxMoves"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		ID:       s.ID,
		Agents:   s.settings.Agents,
		Board:    s.engine.Board().Snapshot(),
		Outcome:  s.engine.Outcome(),
		MaxMoves: s.settings.MaxMoves,
	}
}

func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Board().Snapshot()
}

func (s *Session) Outcome() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Outcome()
}

// Legal lists the actions of the side to move, or nothing once finished.
func (s *Session) Legal() []game.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.Outcome().IsTerminal() {
		return []game.Action{}
	}
	b := s.engine.Board()
	return game.LegalActions(b, b.Turn())
}

// Step lets the agent to move play one action.
func (s *Session) Step(ctx context.Context) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Tick(ctx)
}

// RunToEnd plays until the game is finished. The session lock is taken per
// action so spectators can read the game while it runs.
func (s *Session) RunToEnd(ctx context.Context) (game.Outcome, error) {
	for {
		outcome, err := s.Step(ctx)
		if err != nil || outcome.IsTerminal() {
			return outcome, err
		}
	}
}

// Play commits an action for the side to move on behalf of an in-process
// caller. It fails with game.ErrIllegalAction when the action is not legal.
func (s *Session) Play(action game.Action) (game.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Commit(action)
}

// publish runs under the session lock from inside the engine.
func (s *Session) publish(event engine.Event) {
	s.broadcaster.Broadcast(s.ID, communication.EventAction, event)
	if event.Outcome.IsTerminal() {
		s.broadcaster.Broadcast(s.ID, communication.EventGameOver, event.Outcome)
	}
}
