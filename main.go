package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hospital-sales-server/internal/config"
	"hospital-sales-server/internal/models"
	"hospital-sales-server/internal/routes"
	"hospital-sales-server/internal/sheetstore"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create a DatabaseConfig for models
	modelDbConfig := models.DatabaseConfig{
		DSN: cfg.Database.DSN,
	}

	// Initialize database connection (audit log + accounts)
	db, err := models.InitDB(modelDbConfig)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	// Initialize the process-scoped Google Sheets client and record store
	sheetsClient, err := sheetstore.NewClient(
		context.Background(),
		cfg.Sheets.CredentialsFile,
		cfg.Sheets.SpreadsheetID,
		cfg.Sheets.SheetName,
		time.Duration(cfg.Sheets.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		log.Fatalf("Error creating Google Sheets client: %v", err)
	}
	store := sheetstore.NewStore(sheetsClient, time.Duration(cfg.Sheets.CacheTTLMinutes)*time.Minute)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, store, sheetsClient, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
