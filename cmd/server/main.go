package main

import (
	"log"

	"pipetrak-backend/internal/api/routes"
	"pipetrak-backend/internal/config"
	"pipetrak-backend/internal/database"
	"pipetrak-backend/internal/logger"
	"pipetrak-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "pipetrak-backend/docs" // This is needed for swag
)

//	@title			PipeTrak Backend API
//	@version		1.0
//	@description	Field progress tracking for industrial piping construction: rules-of-credit milestones, drawing-scoped component instances and bulk spreadsheet imports.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// The template registry must be coherent before anything can import or
	// create components against it.
	if err := service.LoadTemplateOverrides(cfg.TemplateOverridesPath); err != nil {
		logrus.Fatal("Failed to load template overrides:", err)
	}
	if err := service.ValidateRegistry(); err != nil {
		logrus.Fatal("Template registry validation failed:", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
