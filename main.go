package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lead-relay/pkg/api"
	"lead-relay/pkg/clients/marketsharp"
	"lead-relay/pkg/config"
	"lead-relay/pkg/middleware"
	"lead-relay/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize API clients
	marketSharpClient := marketsharp.NewClient(cfg.ImportURL)

	// Initialize services
	relayService := services.NewLeadRelayService(marketSharpClient, cfg)

	// Create a new Gin router with default middleware
	router := gin.Default()

	// Add CORS and request-id middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Initialize handlers
	handlers := api.NewHandlers(relayService, cfg)

	// Register routes
	router.POST("/webhook/highlevel-form", handlers.HandleFormWebhook)
	router.POST("/test/lead", handlers.HandleTestLead)
	router.GET("/health", handlers.HealthCheck)

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
