package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quoridor/experiments/metrics"
	"quoridor/game"
	"quoridor/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Local)

func WithMaxMoves(maxMoves int) Option {
	return func(e *Local) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Local) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// WithRandomStart lets a coin seeded by seed pick the first mover.
func WithRandomStart(seed uint64) Option {
	return func(e *Local) {
		e.randomStart = true
		e.seed = seed
	}
}

// Local drives one game between two in-process agents. It is not safe for
// concurrent use.
type Local struct {
	board       *game.Board
	agents      [2]agent.Agent
	names       [2]string
	maxMoves    int
	observers   []Observer
	randomStart bool
	seed        uint64

	starter     game.Player
	outcome     game.Outcome
	startTime   time.Time
	moveMetrics []metrics.MoveMetric
}

// NewLocal binds agents[p] to player p on board. names label the agents in
// logs and metrics.
func NewLocal(board *game.Board, agents [2]agent.Agent, names [2]string, options ...Option) *Local {
	for p, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for %s", game.Player(p)))
		}
	}

	e := &Local{
		board:    board,
		agents:   agents,
		names:    names,
		maxMoves: MaxMoves,
		outcome:  game.InProgress(),
	}
	for _, option := range options {
		option(e)
	}

	if e.randomStart && board.Moves() == 0 {
		coin := rand.New(rand.NewSource(e.seed))
		board.SetTurn(game.Player(coin.Intn(2)))
	}
	e.starter = board.Turn()
	return e
}

func (e *Local) Board() *game.Board {
	return e.board
}

func (e *Local) Outcome() game.Outcome {
	return e.outcome
}

func (e *Local) MoveMetrics() []metrics.MoveMetric {
	return e.moveMetrics
}

// Tick asks the side to move for one action and commits it. It returns the
// outcome after the action; calling Tick on a finished game is a no-op.
// An agent proposing an illegal action is reported as an error wrapping
// game.ErrIllegalAction and leaves the board untouched.
func (e *Local) Tick(ctx context.Context) (game.Outcome, error) {
	if e.outcome.IsTerminal() {
		return e.outcome, nil
	}
	if e.startTime.IsZero() {
		e.startTime = time.Now()
	}
	if e.settle() {
		return e.outcome, nil
	}

	mover := e.board.Turn()
	if len(game.LegalActions(e.board, mover)) == 0 {
		e.forfeit(mover)
		return e.outcome, nil
	}

	start := time.Now()
	action, metric, err := e.agents[mover].FindAction(ctx, e.board, mover)
	think := time.Since(start)
	if errors.Is(err, game.ErrNoLegalActions) {
		e.forfeit(mover)
		return e.outcome, nil
	}
	if err != nil {
		return e.outcome, fmt.Errorf("%s (%s) failed to find an action: %w", mover, e.names[mover], err)
	}
	if err := e.commit(mover, action, metric, think); err != nil {
		return e.outcome, fmt.Errorf("%s (%s) proposed a rejected action: %w", mover, e.names[mover], err)
	}
	return e.outcome, nil
}

// Commit plays an action chosen outside the bound agents for the side to
// move, with the same checks and bookkeeping as Tick.
func (e *Local) Commit(action game.Action) (game.Outcome, error) {
	if e.outcome.IsTerminal() {
		return e.outcome, &game.IllegalActionError{Player: e.board.Turn(), Action: action, Reason: "game is over"}
	}
	if e.startTime.IsZero() {
		e.startTime = time.Now()
	}
	if e.settle() {
		return e.outcome, &game.IllegalActionError{Player: e.board.Turn(), Action: action, Reason: "game is over"}
	}
	err := e.commit(e.board.Turn(), action, metrics.SearchMetric{Agent: "external"}, 0)
	return e.outcome, err
}

func (e *Local) commit(mover game.Player, action game.Action, metric metrics.SearchMetric, think time.Duration) error {
	if err := e.board.Apply(action); err != nil {
		return err
	}

	step := e.board.Moves()
	if metric.Agent == "" {
		metric.Agent = e.names[mover]
	}
	if metric.Duration == 0 {
		metric.Duration = think
	}
	e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
		Step:         step,
		Player:       int(mover),
		Action:       action.String(),
		SearchMetric: metric,
	})
	log.Debug().
		Int("step", step).
		Str("player", mover.String()).
		Str("agent", metric.Agent).
		Str("action", action.String()).
		Dur("think", think).
		Msg("action committed")

	e.settle()
	e.notify(Event{
		Step:    step,
		Player:  mover,
		Action:  &action,
		Think:   think,
		Board:   e.board.Snapshot(),
		Outcome: e.outcome,
	})
	return nil
}

// settle marks the game finished by goal or move ceiling.
func (e *Local) settle() bool {
	if status := game.Status(e.board); status.IsTerminal() {
		e.outcome = status
	} else if e.board.Moves() >= e.maxMoves {
		e.outcome = game.DrawBy(game.MoveLimit)
	}
	return e.outcome.IsTerminal()
}

func (e *Local) forfeit(mover game.Player) {
	e.outcome = game.WonBy(mover.Opponent(), game.Forfeit)
	log.Info().Msgf("%s (%s) has no legal action and forfeits", mover, e.names[mover])
	e.notify(Event{
		Step:    e.board.Moves(),
		Player:  mover,
		Board:   e.board.Snapshot(),
		Outcome: e.outcome,
	})
}

func (e *Local) notify(event Event) {
	for _, observer := range e.observers {
		observer(event)
	}
}

// Run executes the game loop until the game is finished.
func (e *Local) Run(ctx context.Context) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Msgf("%s (%s) vs %s (%s), %s is starting",
		game.Player0, e.names[game.Player0], game.Player1, e.names[game.Player1], e.starter)

	for !e.outcome.IsTerminal() {
		if _, err := e.Tick(ctx); err != nil {
			return e.outcome, e.GameMetric(), e.moveMetrics, err
		}
	}

	log.Info().Msgf("game over after %d moves: %s", e.board.Moves(), e.outcome)
	return e.outcome, e.GameMetric(), e.moveMetrics, nil
}

func (e *Local) GameMetric() metrics.GameMetric {
	start := e.startTime
	if start.IsZero() {
		start = time.Now()
	}
	end := time.Now()
	return metrics.GameMetric{
		StartingPlayer: int(e.starter),
		Winner:         int(e.outcome.Winner),
		Result:         e.outcome.Result.String(),
		Reason:         e.outcome.Reason.String(),
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalMoves:     e.board.Moves(),
	}
}
