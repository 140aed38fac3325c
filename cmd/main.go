package main

import (
	"log"

	"github.com/durcevicjuraj/calorie-tracker-web/config"
	"github.com/durcevicjuraj/calorie-tracker-web/routes"
	"github.com/durcevicjuraj/calorie-tracker-web/services"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(db, hub)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
