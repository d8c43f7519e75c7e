package models

import "time"

// UserCard records how many copies of one catalog entry a user owns. The
// composite unique index is what lets card grants run as a single
// insert-or-increment statement.
type UserCard struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:idx_user_pokemon" json:"userId"`
	PokemonID  int       `gorm:"uniqueIndex:idx_user_pokemon" json:"pokemonId"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
	ObtainedAt time.Time `json:"obtainedAt"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}
