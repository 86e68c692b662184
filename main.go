// File: /main.go
package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"showroom-api/config"
	"showroom-api/database"
	"showroom-api/middleware"
	"showroom-api/routes"
	"showroom-api/services"
)

func main() {
	importFile := flag.String("import", "", "bulk-load bikes from a feed-shaped JSON file and exit")
	flag.Parse()

	// Load .env if present, then configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
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

	// One-shot bulk importer, the staff workflow for seeding the catalog
	if *importFile != "" {
		created, updated, err := database.ImportBikes(db, *importFile)
		if err != nil {
			log.Fatal("Import failed:", err)
		}
		log.Printf("Import complete! Created: %d, Updated: %d", created, updated)
		return
	}

	// Seed the initial admin account when configured
	if err := database.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed admin account: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Email service for staff lead notifications
	emailService := services.NewEmailService(cfg)

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting showroom API server on port %s", cfg.Port)
	log.Printf("Bikes feed available at: http://localhost:%s/api/bikes.json", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
