package routes

import (
	"github.com/pokecollect/pokedex-backend/controllers"
	"github.com/pokecollect/pokedex-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes binds controllers to the API surface. The rate limiter guards
// everything under /api.
func SetupRoutes(r *gin.Engine, limiter *middleware.RateLimiter) {
	api := r.Group("/api")
	api.Use(limiter.Middleware())

	// ----------------------
	// Auth routes
	// ----------------------
	auth := api.Group("/auth")
	auth.POST("/register", controllers.Register)
	auth.POST("/login", controllers.Login)
	auth.GET("/me", middleware.RequireAuth(), controllers.Me)

	// ----------------------
	// Pokemon catalog routes (mutations are admin-only)
	// ----------------------
	pokemons := api.Group("/pokemons")
	pokemons.GET("", controllers.ListPokemons)
	pokemons.GET("/:id", controllers.GetPokemon)
	pokemons.POST("", middleware.RequireAuth(), middleware.RequireAdmin(), controllers.CreatePokemon)
	pokemons.PUT("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), controllers.UpdatePokemon)
	pokemons.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(), controllers.DeletePokemon)

	// ----------------------
	// User routes
	// ----------------------
	users := api.Group("/users", middleware.RequireAuth())
	users.GET("", middleware.RequireAdmin(), controllers.ListUsers)
	users.GET("/:id", controllers.GetUser)
	users.PUT("/:id", controllers.UpdateUser)
	users.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteUser)

	// ----------------------
	// User card routes
	// ----------------------
	cards := api.Group("/user-cards", middleware.RequireAuth())
	cards.POST("/open-booster", controllers.OpenBooster)
	cards.GET("/collection", controllers.GetCollection)
}
