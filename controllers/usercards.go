package controllers

import (
	"errors"
	"net/http"

	"github.com/pokecollect/pokedex-backend/middleware"
	"github.com/pokecollect/pokedex-backend/services"

	"github.com/gin-gonic/gin"
)

// OpenBooster grants five random cards to the caller and returns them with
// their quantity and new/duplicate status.
func OpenBooster(c *gin.Context) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "Access denied, missing or malformed token",
		})
		return
	}

	cards, err := services.OpenBooster(identity.ID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCatalog) {
			internalError(c, "Cannot open a booster, the catalog is empty", err)
			return
		}
		internalError(c, "Failed to open booster", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  http.StatusCreated,
		"message": "Booster opened successfully",
		"cards":   cards,
	})
}

// GetCollection returns the caller's cards, most recently obtained first.
func GetCollection(c *gin.Context) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  http.StatusUnauthorized,
			"message": "Access denied, missing or malformed token",
		})
		return
	}

	collection, err := services.GetCollection(identity.ID)
	if err != nil {
		internalError(c, "Failed to fetch collection", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   collection,
	})
}
