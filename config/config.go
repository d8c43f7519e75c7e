package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings.
type Config struct {
	DatabaseURL   string
	JWTSecret     string
	Port          string
	FrontendURL   string
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	PokedexFile   string
}

// C is the process-wide configuration, set by Load.
var C *Config

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          getEnv("PORT", "3000"),
		FrontendURL:   getEnv("FRONTEND_URL", "*"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@pokedex.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "Admin123!"),
		PokedexFile:   os.Getenv("POKEDEX_FILE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required in .env or environment")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required in .env or environment")
	}

	C = cfg
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
