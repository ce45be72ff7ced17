package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/resonanse/resonanse_api/config"
	deps "github.com/resonanse/resonanse_api/internal/debs"
	api "github.com/resonanse/resonanse_api/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
	migrateTimeout                = 30 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	migrateCtx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()
	if err := deps.DB.Migrate(migrateCtx); err != nil {
		log.Panicln("failed to run schema migration", "error", err)
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
		DB:     deps.Pool(),
	}
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("server shutdown failed", "error", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
