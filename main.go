package main

import (
	"log"
	"net/http"
	"time"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/middleware"
	"github.com/pokecollect/pokedex-backend/routes"
	"github.com/pokecollect/pokedex-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Rate guard: 100 requests per rolling minute per client, swept every 5 minutes.
const (
	rateLimitMax    = 100
	rateLimitWindow = time.Minute
	rateSweepPeriod = 5 * time.Minute
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, limiter)

	// Base route
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Pokemon collection API")
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	// Load env variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// Connect to database
	db := config.SetupDatabase(cfg)

	// Seed the default admin account
	if err := config.EnsureAdmin(db, cfg); err != nil {
		log.Fatalf("[FATAL] Failed to seed admin user: %v", err)
	}

	// Optionally seed the catalog from a pokedex dump
	if cfg.PokedexFile != "" {
		if err := services.LoadPokedex(cfg.PokedexFile); err != nil {
			log.Fatalf("[FATAL] Failed to load pokedex file: %v", err)
		}
	}

	// Rate limiter with its periodic sweep
	limiter := middleware.NewRateLimiter(rateLimitMax, rateLimitWindow)
	go limiter.SweepEvery(rateSweepPeriod)

	// Setup Gin router
	router := setupRouter(cfg, limiter)

	// Start server
	log.Printf("🚀 Pokedex backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
