package server

import (
	"database/sql"
	"errors"
	"net/http"

	"truco-game/internal/database"

	"github.com/gin-gonic/gin"
)

// ResultStore is the read side of the match history.
type ResultStore interface {
	GetAll() ([]database.GameResult, error)
	GetByPlayer(name string) ([]database.GameResult, error)
}

// NewRouter registers the websocket endpoint and the HTTP API. store may be
// nil, in which case the results endpoints answer 503.
func NewRouter(hub *Hub, store ResultStore, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c.Writer, c.Request)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"rooms":  hub.Registry().Len(),
		})
	})

	r.GET("/api/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, hub.Registry().Snapshots())
	})

	results := r.Group("/api/results")
	results.GET("", func(c *gin.Context) {
		getResults(store, c)
	})
	results.GET("/player/:name", func(c *gin.Context) {
		getResultsByPlayer(store, c)
	})
	hub.log.Debug("Registered routes: /ws, /healthz, /api/rooms, /api/results, /api/results/player/:name")

	if staticDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
		hub.log.Infof("Serving static files from %s", staticDir)
	}
	return r
}

func getResults(store ResultStore, c *gin.Context) {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "results store disabled"})
		return
	}
	results, err := store.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch results"})
		return
	}
	if results == nil {
		results = []database.GameResult{}
	}
	c.JSON(http.StatusOK, results)
}

func getResultsByPlayer(store ResultStore, c *gin.Context) {
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "results store disabled"})
		return
	}
	player := c.Param("name")
	if player == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player name is required"})
		return
	}

	results, err := store.GetByPlayer(player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no results found for player"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch results"})
		return
	}
	c.JSON(http.StatusOK, results)
}
