package services

import (
	"encoding/json"
	"os"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/utils/logger"
)

// LoadPokedex seeds the catalog from a JSON dump file. Entries whose pokedex
// id is already present are skipped, so reruns are safe.
func LoadPokedex(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []models.Pokemon
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	var existing []int
	if err := config.DB.Model(&models.Pokemon{}).Pluck("pokedex_id", &existing).Error; err != nil {
		return err
	}
	seen := make(map[int]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}

	inserted := 0
	for i := range entries {
		if seen[entries[i].PokedexID] {
			continue
		}
		if err := config.DB.Create(&entries[i]).Error; err != nil {
			return err
		}
		inserted++
	}

	logger.Infof("loaded %d pokemons from %s (%d already present)", inserted, path, len(entries)-inserted)
	return nil
}
