package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/Mo2025mo/la-automotive/internal/api/routes"
	"github.com/Mo2025mo/la-automotive/internal/config"
	"github.com/Mo2025mo/la-automotive/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.Default()

	// Setup routes
	if err := routes.SetupRoutes(r, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Serve static files from web/dist directory
	frontendDir := filepath.Join("web", "dist")
	r.Static("/assets", filepath.Join(frontendDir, "assets"))
	r.StaticFile("/favicon.ico", filepath.Join(frontendDir, "favicon.ico"))

	// Serve index.html for root and all non-API routes (SPA routing)
	r.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(frontendDir, "index.html"))
	})

	// Fallback to index.html for SPA routing
	r.NoRoute(func(c *gin.Context) {
		// Check if it's an API route
		path := c.Request.URL.Path
		if len(path) >= 4 && path[:4] == "/api" {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		// For all other routes, serve index.html (SPA fallback)
		c.File(filepath.Join(frontendDir, "index.html"))
	})

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting LA Automotive server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
