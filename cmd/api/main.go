package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/api/middleware"
	"github.com/halcyon-rp/depthub/internal/api/routes"
	"github.com/halcyon-rp/depthub/internal/config"
	"github.com/halcyon-rp/depthub/internal/config/db"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
