package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"inkwell-api/config"
	"inkwell-api/database"
	"inkwell-api/middleware"
	"inkwell-api/routes"
	"inkwell-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with starter data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimit(300, 30))

	cacheService := services.NewCacheService(cfg.CacheTTL)
	emailService := services.NewEmailService(cfg)
	routes.SetupRoutes(router, db, cfg, cacheService, emailService)

	log.Printf("Starting Inkwell API server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
