package database

import (
	"github.com/ratehub/store-ratings/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. Repositories receive
// it explicitly; there is no package-level connection.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the users, stores and ratings tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{})
}
