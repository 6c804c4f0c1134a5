package database

import (
	"errors"

	"github.com/ratehub/store-ratings/internal/config"
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/utils"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedAdmin creates the configured administrator account if no user with
// that email exists yet. Safe to run on every startup.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		logger.Log.Debug("Admin user already exists",
			zap.String("email", existing.Email),
		)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: passwordHash,
		Address:      cfg.AdminAddress,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Log.Info("Admin user seeded",
		zap.Uint("user_id", admin.ID),
		zap.String("email", admin.Email),
	)
	return nil
}
