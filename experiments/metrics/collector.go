package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Agent        string
	Goroutines   int
	Duration     time.Duration
	Candidates   int // legal actions scored
	Simulations  int // playouts run
	FullPlayouts int // playouts that ended with a winner before the cap
}

type MoveMetric struct {
	Step   int
	Player int // game.Player
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // game.Player
	Winner         int // game.Player, -1 on a draw
	Result         string
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics for one decision. Implementations are
// safe for concurrent use by playout workers.
type Collector interface {
	Start(agent string, goroutines int)
	AddCandidate()
	AddSimulation()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	agent        string
	goroutines   int
	startTime    time.Time
	candidates   atomic.Int32
	simulations  atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(agent string, goroutines int) {
	m.agent = agent
	m.goroutines = goroutines
	m.startTime = time.Now()
	m.candidates.Store(0)
	m.simulations.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Agent:        m.agent,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Candidates:   int(m.candidates.Load()),
		Simulations:  int(m.simulations.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(agent string, goroutines int) {}
func (m *dummyCollector) AddCandidate()                      {}
func (m *dummyCollector) AddSimulation()                     {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
