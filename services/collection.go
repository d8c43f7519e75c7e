package services

import (
	"math/rand/v2"
	"time"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/utils/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BoosterSize is the number of cards granted per booster.
const BoosterSize = 5

// Card status labels stay French; they are part of the wire contract the
// frontend renders.
const (
	CardStatusNew       = "nouveau"
	CardStatusDuplicate = "dupliqué"
	CardStatusOwned     = "possédé"
)

// DrawRandom picks count pokedex ids uniformly at random, with replacement.
// Duplicates inside a single draw are intended; they become duplicate cards.
func DrawRandom(count int) ([]int, error) {
	var ids []int
	if err := config.DB.Model(&models.Pokemon{}).Pluck("pokedex_id", &ids).Error; err != nil {
		return nil, err
	}
	return drawFrom(ids, count)
}

func drawFrom(ids []int, count int) ([]int, error) {
	if len(ids) == 0 {
		return nil, ErrEmptyCatalog
	}
	selected := make([]int, count)
	for i := range selected {
		selected[i] = ids[rand.IntN(len(ids))]
	}
	return selected, nil
}

// Grant is the outcome of adding one card to a collection.
type Grant struct {
	PokemonID int
	Quantity  int
	IsNew     bool
}

// GrantCard adds one copy of the given Pokémon to the user's collection.
// Insert and increment happen in a single statement so two concurrent opens
// for the same (user, pokemon) pair cannot both create a row.
func GrantCard(userID uint, pokemonID int) (*Grant, error) {
	card := models.UserCard{
		UserID:     userID,
		PokemonID:  pokemonID,
		Quantity:   1,
		ObtainedAt: time.Now(),
	}
	err := config.DB.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "pokemon_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("user_cards.quantity + 1"),
				"updated_at": time.Now(),
			}),
		},
		clause.Returning{},
	).Create(&card).Error
	if err != nil {
		return nil, err
	}

	// quantity 1 means the insert won, anything higher means increment
	return &Grant{PokemonID: pokemonID, Quantity: card.Quantity, IsNew: card.Quantity == 1}, nil
}

// OwnedCard is a catalog entry joined with the owner's quantity and status.
type OwnedCard struct {
	models.Pokemon
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	ObtainedAt *time.Time `json:"obtainedAt,omitempty"`
}

// OpenBooster grants BoosterSize random cards to a user and returns them
// joined against the catalog, ordered by pokedex id. Grants already applied
// are kept when a later one fails; the caller then sees the error, never a
// silent partial success.
func OpenBooster(userID uint) ([]OwnedCard, error) {
	drawn, err := DrawRandom(BoosterSize)
	if err != nil {
		return nil, err
	}

	grants := make(map[int]*Grant, len(drawn))
	for _, id := range drawn {
		g, err := GrantCard(userID, id)
		if err != nil {
			return nil, err
		}
		grants[id] = g
	}

	var pokemons []models.Pokemon
	if err := config.DB.Where("pokedex_id IN ?", drawn).Order("pokedex_id ASC").Find(&pokemons).Error; err != nil {
		return nil, err
	}

	cards := make([]OwnedCard, 0, len(pokemons))
	for _, p := range pokemons {
		g, ok := grants[p.PokedexID]
		if !ok {
			continue
		}
		status := CardStatusDuplicate
		if g.IsNew {
			status = CardStatusNew
		}
		cards = append(cards, OwnedCard{Pokemon: p, Quantity: g.Quantity, Status: status})
	}
	return cards, nil
}

// GetCollection returns everything a user owns, most recently obtained
// first. Cards whose catalog entry no longer exists are skipped rather than
// failing the whole request.
func GetCollection(userID uint) ([]OwnedCard, error) {
	var cards []models.UserCard
	if err := config.DB.Where("user_id = ?", userID).Order("obtained_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return []OwnedCard{}, nil
	}

	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.PokemonID)
	}

	var pokemons []models.Pokemon
	if err := config.DB.Where("pokedex_id IN ?", ids).Find(&pokemons).Error; err != nil {
		return nil, err
	}
	byID := make(map[int]models.Pokemon, len(pokemons))
	for _, p := range pokemons {
		byID[p.PokedexID] = p
	}

	out := make([]OwnedCard, 0, len(cards))
	for _, c := range cards {
		p, ok := byID[c.PokemonID]
		if !ok {
			logger.Warnf("catalog entry %d missing for user %d, skipping card", c.PokemonID, c.UserID)
			continue
		}
		obtained := c.ObtainedAt
		out = append(out, OwnedCard{Pokemon: p, Quantity: c.Quantity, Status: CardStatusOwned, ObtainedAt: &obtained})
	}
	return out, nil
}
