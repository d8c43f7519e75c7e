package config

import (
	"strings"

	"github.com/pokecollect/pokedex-backend/models"
	"github.com/pokecollect/pokedex-backend/utils/logger"

	"gorm.io/gorm"
)

// EnsureAdmin creates the default admin account when no admin-role user
// exists yet. Reruns are no-ops.
func EnsureAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("admin user already present, nothing to seed")
		return nil
	}

	admin := models.User{
		Username: cfg.AdminUsername,
		Email:    strings.ToLower(cfg.AdminEmail),
		Role:     models.RoleAdmin,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Infof("default admin user %q created", admin.Username)
	return nil
}
