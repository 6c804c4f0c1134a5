package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/config"
	"github.com/ratehub/store-ratings/internal/database"
	"github.com/ratehub/store-ratings/internal/handler"
	"github.com/ratehub/store-ratings/internal/middleware"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/service"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment != "production"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		logger.Log.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.Environment)
	adminService := service.NewAdminService(userRepo, storeRepo, ratingRepo)
	storeService := service.NewStoreService(storeRepo, ratingRepo)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	storeHandler := handler.NewStoreHandler(storeService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(cfg.Environment == "production"))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public routes
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Server is running",
		})
	})
	router.POST("/api/auth/register", authHandler.Register)
	router.POST("/api/auth/login", authHandler.Login)

	// Protected routes (require JWT)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.PUT("/auth/password", authHandler.ChangePassword)
		protected.GET("/stores", storeHandler.ListStores)
		protected.POST("/ratings", ratingHandler.Submit)
		protected.GET("/store-owner/dashboard", storeHandler.OwnerDashboard)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.POST("/users", adminHandler.CreateUser)
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/stores", adminHandler.ListStores)
	}

	// Start server
	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
