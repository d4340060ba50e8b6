package gamemaster

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"quoridor/communication"
	"quoridor/engine"
	"quoridor/game"
	"quoridor/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AgentSpec struct {
	Kind   agent.Kind   `json:"kind" yaml:"kind"`
	Params agent.Params `json:"params" yaml:"params"`
}

// Settings describe a game to host.
type Settings struct {
	Layout      game.Layout  `json:"layout"`
	Agents      [2]AgentSpec `json:"agents"`
	MaxMoves    int          `json:"maxMoves"`
	RandomStart bool         `json:"randomStart"`
	Seed        uint64       `json:"seed"`
}

func DefaultSettings() Settings {
	params := agent.DefaultParams()
	return Settings{
		Layout: game.DefaultLayout(game.DefaultSize, game.DefaultWalls),
		Agents: [2]AgentSpec{
			{Kind: agent.GreedyPathSearch, Params: params},
			{Kind: agent.MonteCarlo, Params: params},
		},
		MaxMoves: engine.MaxMoves,
	}
}

// GameMaster keeps the games being played in this process.
type GameMaster struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	broadcaster communication.Broadcaster
}

func NewGameMaster(broadcaster communication.Broadcaster) *GameMaster {
	if broadcaster == nil {
		broadcaster = communication.NewNopBroadcaster()
	}
	return &GameMaster{
		sessions:    map[string]*Session{},
		broadcaster: broadcaster,
	}
}

// Create sets up a new game from settings and registers it under a fresh id.
func (gm *GameMaster) Create(settings Settings) (*Session, error) {
	if err := settings.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	var agents [2]agent.Agent
	var names [2]string
	for p, spec := range settings.Agents {
		a, err := agent.New(spec.Kind, spec.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent for %s: %w", game.Player(p), err)
		}
		agents[p] = a
		names[p] = spec.Kind.String()
	}

	s := &Session{
		ID:          uuid.NewString(),
		Created:     time.Now().UTC(),
		settings:    settings,
		broadcaster: gm.broadcaster,
	}
	options := []engine.Option{
		engine.WithMaxMoves(settings.MaxMoves),
		engine.WithObserver(s.publish),
	}
	if settings.RandomStart {
		seed := settings.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		options = append(options, engine.WithRandomStart(seed))
	}
	s.engine = engine.NewLocal(game.NewBoard(settings.Layout), agents, names, options...)

	gm.mu.Lock()
	gm.sessions[s.ID] = s
	gm.mu.Unlock()

	log.Info().Str("game", s.ID).Msgf("created game %s vs %s", names[0], names[1])
	gm.broadcaster.Broadcast(s.ID, communication.EventCreated, s.Snapshot())
	return s, nil
}

func (gm *GameMaster) Get(id string) (*Session, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s, ok := gm.sessions[id]
	return s, ok
}

// List returns the ids of all hosted games, oldest first.
func (gm *GameMaster) List() []string {
	gm.mu.RLock()
	sessions := make([]*Session, 0, len(gm.sessions))
	for _, s := range gm.sessions {
		sessions = append(sessions, s)
	}
	gm.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Created.Equal(sessions[j].Created) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].Created.Before(sessions[j].Created)
	})
	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids
}

func (gm *GameMaster) Remove(id string) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	_, ok := gm.sessions[id]
	delete(gm.sessions, id)
	return ok
}
