package communication

// Broadcaster fans game events out to whoever is watching a game.
type Broadcaster interface {
	Broadcast(gameID string, event string, data any)
}

type nopBroadcaster struct{}

// NewNopBroadcaster drops every event.
func NewNopBroadcaster() Broadcaster {
	return nopBroadcaster{}
}

func (nopBroadcaster) Broadcast(string, string, any) {}

const (
	EventCreated  = "created"
	EventAction   = "action"
	EventGameOver = "game_over"
)
