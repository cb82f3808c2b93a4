package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mkendrick/jobtrack/internal/config"
	"github.com/mkendrick/jobtrack/internal/database"
	"github.com/mkendrick/jobtrack/internal/handlers"
	"github.com/mkendrick/jobtrack/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	cfg := config.Load()

	// 2. Database Connection
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 3. Initialize Core Services
	associationService := services.NewAssociationService(db)
	tagService := services.NewTagService(db, associationService)
	applicationService := services.NewApplicationService(db, associationService)
	dashboardService := services.NewDashboardService(db)

	// 4. Initialize Handlers
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	tagHandler := handlers.NewTagHandler(tagService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Application Routes
		api.GET("/applications", applicationHandler.List)
		api.POST("/applications", applicationHandler.Create)
		api.GET("/applications/:id", applicationHandler.Get)
		api.PUT("/applications/:id", applicationHandler.Update)
		api.DELETE("/applications/:id", applicationHandler.Delete)

		// Tag Routes
		api.GET("/tags", tagHandler.List)
		api.POST("/tags", tagHandler.Create)
		api.GET("/tags/:id", tagHandler.Get)
		api.PUT("/tags/:id", tagHandler.Update)
		api.DELETE("/tags/:id", tagHandler.Delete)

		// Dashboard
		api.GET("/dashboard", dashboardHandler.Summary)
	}

	log.Println("Server starting on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
