package main

import (
	"log"

	"github.com/ratehub/store-ratings/internal/config"
	"github.com/ratehub/store-ratings/internal/database"
	"github.com/ratehub/store-ratings/pkg/logger"
)

// Seeds the configured administrator account. The server does the same at
// startup; this binary exists for provisioning a database ahead of time.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment != "production"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatal("Failed to seed admin:", err)
	}

	log.Println("Admin user ready:", cfg.AdminEmail)
}
