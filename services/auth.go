package services

import (
	"errors"

	"github.com/pokecollect/pokedex-backend/config"
	"github.com/pokecollect/pokedex-backend/models"

	"gorm.io/gorm"
)

// Authenticate looks up a user by username and verifies the password. An
// unknown username and a wrong password both collapse into
// ErrInvalidCredentials, so a response can never reveal which one it was.
func Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
