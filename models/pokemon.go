package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// PokemonName holds the localized display names of a catalog entry.
type PokemonName struct {
	English  string `json:"english"`
	Japanese string `json:"japanese"`
	Chinese  string `json:"chinese"`
	French   string `json:"french"`
}

// BaseStats is the stat block of a catalog entry.
type BaseStats struct {
	HP        int `json:"HP"`
	Attack    int `json:"Attack"`
	Defense   int `json:"Defense"`
	SpAttack  int `json:"SpAttack"`
	SpDefense int `json:"SpDefense"`
	Speed     int `json:"Speed"`
}

// MarshalJSON emits the display aliases the frontend expects ("Sp. Attack",
// "Sp. Defense") alongside the canonical keys.
func (b BaseStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{
		"HP":          b.HP,
		"Attack":      b.Attack,
		"Defense":     b.Defense,
		"SpAttack":    b.SpAttack,
		"SpDefense":   b.SpDefense,
		"Speed":       b.Speed,
		"Sp. Attack":  b.SpAttack,
		"Sp. Defense": b.SpDefense,
	})
}

// Pokemon is a shared catalog entry. PokedexID is the externally meaningful
// numeric id; the row key stays internal. PokedexID uniqueness is enforced in
// the catalog service, not by the schema.
type Pokemon struct {
	ID        uint                        `gorm:"primaryKey" json:"-"`
	PokedexID int                         `gorm:"index" json:"id"`
	Name      PokemonName                 `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Type      datatypes.JSONSlice[string] `json:"type"`
	Base      BaseStats                   `gorm:"embedded;embeddedPrefix:base_" json:"base"`
	Image     string                      `json:"image"`
	CreatedAt time.Time                   `json:"-"`
	UpdatedAt time.Time                   `json:"-"`
}
