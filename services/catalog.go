package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultPageSize is applied when a listing gives no limit.
const DefaultPageSize = 300

// CatalogFilter narrows a catalog listing. Name matches the English name as
// a case-insensitive substring; Type matches one elemental type exactly
// after case normalization.
type CatalogFilter struct {
	Name  string
	Type  string
	Page  int
	Limit int
}

// NormalizeType maps "fIRE" to "Fire", the casing stored in the catalog.
func NormalizeType(t string) string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
}

func catalogQuery(f CatalogFilter) *gorm.DB {
	q := config.DB.Model(&models.Pokemon{})
	if f.Name != "" {
		q = q.Where("name_english ILIKE ?", "%"+f.Name+"%")
	}
	if f.Type != "" {
		q = q.Where("type @> ?::jsonb", fmt.Sprintf("[%q]", NormalizeType(f.Type)))
	}
	return q
}

// ListPokemons returns one page of catalog entries sorted by pokedex id,
// plus the total match count before pagination.
func ListPokemons(f CatalogFilter) ([]models.Pokemon, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}

	var total int64
	if err := catalogQuery(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pokemons := make([]models.Pokemon, 0)
	err := catalogQuery(f).
		Order("pokedex_id ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&pokemons).Error
	if err != nil {
		return nil, 0, err
	}
	return pokemons, total, nil
}

// GetPokemonByID looks up a catalog entry by its pokedex id.
func GetPokemonByID(pokedexID int) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := config.DB.Where("pokedex_id = ?", pokedexID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// CreatePokemon persists a new catalog entry. The pokedex id must not be in
// use yet; the schema does not enforce this, the service does.
func CreatePokemon(p *models.Pokemon) error {
	var count int64
	if err := config.DB.Model(&models.Pokemon{}).Where("pokedex_id = ?", p.PokedexID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return config.DB.Create(p).Error
}

// PokemonPatch carries the fields a catalog update may change. Nil fields
// are left untouched.
type PokemonPatch struct {
	Name  *models.PokemonName `json:"name"`
	Type  *[]string           `json:"type"`
	Base  *models.BaseStats   `json:"base"`
	Image *string             `json:"image"`
}

func (patch PokemonPatch) apply(p *models.Pokemon) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Type != nil {
		p.Type = datatypes.NewJSONSlice(*patch.Type)
	}
	if patch.Base != nil {
		p.Base = *patch.Base
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
}

// UpdatePokemon merges the given fields into an existing catalog entry.
func UpdatePokemon(pokedexID int, patch PokemonPatch) (*models.Pokemon, error) {
	p, err := GetPokemonByID(pokedexID)
	if err != nil {
		return nil, err
	}

	patch.apply(p)
	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePokemon removes a catalog entry by pokedex id.
func DeletePokemon(pokedexID int) error {
	res := config.DB.Where("pokedex_id = ?", pokedexID).Delete(&models.Pokemon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
