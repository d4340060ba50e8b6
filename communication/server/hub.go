package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const writeWait = 5 * time.Second

type message struct {
	Event string `json:"event"`
	Game  string `json:"game"`
	Data  any    `json:"data"`
}

// Hub keeps the websocket spectators of every game and pushes game events
// to them.
type Hub struct {
	mu    sync.Mutex // also serialises writes to the connections
	rooms map[string]map[*websocket.Conn]struct{}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Spectators may connect from any origin
	},
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Serve upgrades the request, sends hello as the first message and keeps
// the connection subscribed to gameID until the client goes away.
func (h *Hub) Serve(c *gin.Context, gameID string, hello any) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("failed to upgrade connection")
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[gameID]; !ok {
		h.rooms[gameID] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[gameID][conn] = struct{}{}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(message{Event: "hello", Game: gameID, Data: hello})
	h.mu.Unlock()
	log.Debug().Str("game", gameID).Msg("spectator connected")

	defer func() {
		h.mu.Lock()
		delete(h.rooms[gameID], conn)
		if len(h.rooms[gameID]) == 0 {
			delete(h.rooms, gameID)
		}
		h.mu.Unlock()
		_ = conn.Close()
		log.Debug().Str("game", gameID).Msg("spectator disconnected")
	}()
	if err != nil {
		return
	}

	// Spectators only listen; reading keeps control frames flowing and
	// notices when the client leaves
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) Broadcast(gameID string, event string, data any) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[gameID]
	if !ok {
		return
	}

	msg := message{Event: event, Game: gameID, Data: data}
	for conn := range clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn().Err(err).Str("game", gameID).Msg("failed to send event")
			_ = conn.Close()
			delete(clients, conn)
		}
	}
}

func (h *Hub) Subscribers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[gameID])
}
