package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/services"

	"github.com/gin-gonic/gin"
)

func pokedexIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid pokemon id")
		return 0, false
	}
	return id, true
}

// ListPokemons returns one catalog page, filtered by name substring and
// elemental type when given, with the pre-pagination total.
func ListPokemons(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "300"))

	pokemons, total, err := services.ListPokemons(services.CatalogFilter{
		Name:  c.Query("name"),
		Type:  c.Query("type"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		internalError(c, "Failed to fetch pokemons", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"total":  total,
		"data":   pokemons,
	})
}

// GetPokemon returns one catalog entry by pokedex id.
func GetPokemon(c *gin.Context) {
	id, ok := pokedexIDParam(c)
	if !ok {
		return
	}

	pokemon, err := services.GetPokemonByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c, "Pokemon not found")
			return
		}
		internalError(c, "Failed to fetch pokemon", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"data":   pokemon,
	})
}

// CreatePokemon adds a catalog entry. Admin only.
func CreatePokemon(c *gin.Context) {
	var pokemon models.Pokemon
	if err := c.ShouldBindJSON(&pokemon); err != nil {
		badRequest(c, err.Error())
		return
	}

	if err := services.CreatePokemon(&pokemon); err != nil {
		if errors.Is(err, services.ErrConflict) {
			badRequest(c, "A pokemon with this id already exists")
			return
		}
		internalError(c, "Failed to create pokemon", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  http.StatusCreated,
		"message": "Pokemon created successfully",
		"data":    pokemon,
	})
}

// UpdatePokemon merges the given fields into a catalog entry. Admin only.
func UpdatePokemon(c *gin.Context) {
	id, ok := pokedexIDParam(c)
	if !ok {
		return
	}

	var patch services.PokemonPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}

	pokemon, err := services.UpdatePokemon(id, patch)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c, "Pokemon not found")
			return
		}
		internalError(c, "Failed to update pokemon", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Pokemon updated successfully",
		"data":    pokemon,
	})
}

// DeletePokemon removes a catalog entry. Admin only.
func DeletePokemon(c *gin.Context) {
	id, ok := pokedexIDParam(c)
	if !ok {
		return
	}

	if err := services.DeletePokemon(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			notFound(c, "Pokemon not found")
			return
		}
		internalError(c, "Failed to delete pokemon", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  http.StatusOK,
		"message": "Pokemon deleted successfully",
	})
}
