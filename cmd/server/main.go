// Command server runs the seat map editor API.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/PouyaBirvand/blito/internal/config"
	"github.com/PouyaBirvand/blito/internal/database"
	"github.com/PouyaBirvand/blito/internal/handler"
	"github.com/PouyaBirvand/blito/internal/queue"
	"github.com/PouyaBirvand/blito/internal/repository"
	"github.com/PouyaBirvand/blito/internal/router"
	"github.com/PouyaBirvand/blito/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: with no client the cache and limiter pass through.
	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	}

	st := store.NewDefault()

	// The audit consumer reconnects on its own; a dead broker only costs
	// the audit trail.
	go func() {
		if err := queue.StartVenueAuditConsumer(); err != nil {
			log.Printf("rabbitmq: audit consumer stopped: %v", err)
		}
	}()

	e := router.New(router.Deps{
		Cfg:     cfg,
		Redis:   rdb,
		Auth:    handler.NewAuthHandler(cfg),
		Venue:   handler.NewVenueHandler(repository.NewVenueRepo(db), st),
		SeatMap: handler.NewSeatMapHandler(repository.NewSeatMapRepo(db), st),
		Editor:  handler.NewEditorHandler(st),
	})

	log.Printf("listening on :%s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
