package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/adrianopellim/sra-educacional/internal/api/routes"
	"github.com/adrianopellim/sra-educacional/internal/config"
	"github.com/adrianopellim/sra-educacional/internal/models"
	"github.com/adrianopellim/sra-educacional/internal/services"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Seed the admin account and lookup lists on first run. A failure here
	// would leave a server with no accounts and empty lookup lists, so it
	// is fatal rather than a warning.
	authService := services.NewAuthService(db, cfg)
	if err := authService.Bootstrap(); err != nil {
		log.Fatalf("Failed to bootstrap database: %v", err)
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.Default()

	// Setup routes
	routes.SetupRoutes(r, db, cfg)

	// Serve the front-end page from the web directory
	frontendDir := "web"
	r.StaticFile("/", filepath.Join(frontendDir, "index.html"))
	r.Static("/static", filepath.Join(frontendDir, "static"))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}
		c.File(filepath.Join(frontendDir, "index.html"))
	})

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting SRA server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
