package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lucasmonteiro/occurrence-api/internal/config"
	"github.com/lucasmonteiro/occurrence-api/internal/database"
	"github.com/lucasmonteiro/occurrence-api/internal/handlers"
	"github.com/lucasmonteiro/occurrence-api/internal/logger"
	"github.com/lucasmonteiro/occurrence-api/internal/middleware"
	"github.com/lucasmonteiro/occurrence-api/internal/repository"
	"github.com/lucasmonteiro/occurrence-api/internal/services"
)

func main() {
	// Local development reads a .env file; deployments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.App.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.App.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	occurrenceRepo := repository.NewOccurrenceRepository(database.GetDB())

	userService := services.NewUserService(userRepo, appLogger)
	occurrenceService := services.NewOccurrenceService(occurrenceRepo, userService, nil, appLogger)
	dashboardService := services.NewDashboardService(occurrenceRepo, cfg.Dashboard)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	occurrenceHandler := handlers.NewOccurrenceHandler(occurrenceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(appLogger))
	r.Use(cors.Default())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Occurrence API is running",
		})
	})

	// Routes
	r.GET("/seed", userHandler.Seed)
	r.POST("/login", userHandler.Login)
	r.GET("/user/profile", userHandler.Profile)
	r.GET("/dashboard/stats", dashboardHandler.Stats)
	r.POST("/occurrence/new", occurrenceHandler.Create)
	r.GET("/user/:id/occurrences", occurrenceHandler.ListByOwner)
	r.PATCH("/occurrence/:id/status", occurrenceHandler.ChangeStatus)
	r.PUT("/occurrence/:id", occurrenceHandler.Edit)
	r.DELETE("/occurrence/:id", occurrenceHandler.Delete)

	// Start server
	appLogger.Info().Str("port", cfg.App.Port).Msg("server starting")
	if err := r.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to start server")
	}
}
