package main

import (
	"log"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	db := config.SetupDatabase(cfg) // connects + migrates

	if err := config.EnsureAdmin(db, cfg); err != nil {
		log.Fatalf("[FATAL] Failed to seed admin user: %v", err)
	}

	if cfg.PokedexFile != "" {
		if err := services.LoadPokedex(cfg.PokedexFile); err != nil {
			log.Fatalf("[FATAL] Failed to load pokedex file: %v", err)
		}
	}

	log.Println("✅ Database migration completed successfully")
}
