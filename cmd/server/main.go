package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truco-game/internal/config"
	"truco-game/internal/database"
	"truco-game/internal/events"
	"truco-game/internal/game"
	"truco-game/internal/server"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.LogLevel < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting Truco server...")

	db, err := database.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to open %s database: %v", cfg.DBDriver, err)
	}
	defer db.Close()

	pub, err := events.Connect(cfg.NATSURL, log.StandardLogger())
	if err != nil {
		log.Warnf("NATS unavailable, events will not be published: %v", err)
		pub = nil
	}
	defer pub.Close()

	opts := game.Options{
		HandDelay:  cfg.HandDelay,
		TrickDelay: cfg.TrickDelay,
		Logger:     log.StandardLogger(),
		OnHandEnd:  pub.PublishHand,
		OnMatchEnd: func(m game.MatchResult) {
			pub.PublishMatch(m)
			// Hooks run under the room lock; keep the write off it.
			go func() {
				if err := db.RecordMatch(m); err != nil {
					log.WithField("room", m.RoomID).Errorf("Failed to record match %s: %v", m.MatchID, err)
				}
			}()
		},
	}

	hub := server.NewHub(opts)
	go hub.Run()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: server.NewRouter(hub, db, cfg.StaticDir),
	}

	go func() {
		log.Infof("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
}
