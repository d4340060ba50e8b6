package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"quoridor/game"
	"quoridor/gamemaster"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewRouter exposes the hosted games to spectators. Games only advance by
// their own agents; there is no endpoint for a remote player.
func NewRouter(gm *gamemaster.GameMaster, hub *Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// WebSocket for live updates
	r.GET("/ws", WatchHandler(gm, hub))

	// --- GAME ENDPOINTS ---
	r.GET("/games", ListGamesHandler(gm))
	r.POST("/games", CreateGameHandler(gm))
	r.GET("/games/:id", GetGameHandler(gm))
	r.DELETE("/games/:id", DeleteGameHandler(gm))
	r.GET("/games/:id/legal", LegalActionsHandler(gm))
	r.POST("/games/:id/step", StepHandler(gm))
	r.POST("/games/:id/run", RunHandler(gm))

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func session(c *gin.Context, gm *gamemaster.GameMaster, id string) (*gamemaster.Session, bool) {
	s, ok := gm.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
	}
	return s, ok
}

func ListGamesHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"games": gm.List()})
	}
}

// CreateGameHandler starts a game from the default settings overridden by
// any fields present in the request body.
func CreateGameHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := gamemaster.DefaultSettings()
		if err := c.ShouldBindJSON(&settings); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s, err := gm.Create(settings)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": s.ID, "game": s.View()})
	}
}

func GetGameHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, gm, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.View())
	}
}

func DeleteGameHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gm.Remove(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func LegalActionsHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, gm, c.Param("id"))
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"actions": s.Legal()})
	}
}

func StepHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, gm, c.Param("id"))
		if !ok {
			return
		}
		if _, err := s.Step(c.Request.Context()); err != nil {
			respondEngineError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.View())
	}
}

func RunHandler(gm *gamemaster.GameMaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := session(c, gm, c.Param("id"))
		if !ok {
			return
		}
		if _, err := s.RunToEnd(c.Request.Context()); err != nil {
			respondEngineError(c, err)
			return
		}
		c.JSON(http.StatusOK, s.View())
	}
}

func WatchHandler(gm *gamemaster.GameMaster, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("game")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing game"})
			return
		}
		s, ok := session(c, gm, id)
		if !ok {
			return
		}
		hub.Serve(c, id, s.View())
	}
}

func respondEngineError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, game.ErrIllegalAction) {
		status = http.StatusConflict
	}
	log.Error().Err(err).Msg("game failed to advance")
	c.JSON(status, gin.H{"error": err.Error()})
}
