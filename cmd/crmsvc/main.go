package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/almog-gaya/nextprop-sub005/internal/app"
	"github.com/almog-gaya/nextprop-sub005/internal/config"
)

func main() {
	// Missing .env is fine in deployed environments
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
