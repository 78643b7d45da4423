package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"prdash/internal/github"
	"prdash/internal/handlers"
	"prdash/internal/middleware"
	"prdash/internal/repositories"
	"prdash/internal/services"
	"prdash/pkg/config"
	"prdash/pkg/database"
	"prdash/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize logger
	logger.Init()

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	githubClient := github.NewClient(
		config.AppConfig.GitHub.APIBaseURL,
		config.AppConfig.GitHub.UserAgent,
	)

	settingsRepo := repositories.NewSettingsRepository(database.DB)
	settingsService := services.NewSettingsService(settingsRepo, config.AppConfig.Dashboard.DefaultPollInterval)

	searchService := services.NewSearchService(githubClient, config.AppConfig.Dashboard.SearchPageSize)
	turnService := services.NewTurnService()
	summaryService := services.NewReviewSummaryService()
	enrichmentService := services.NewEnrichmentService(githubClient, turnService, summaryService)
	dashboardService := services.NewDashboardService(githubClient, searchService, enrichmentService)
	exportService := services.NewExportService()

	// Initialize router
	router := gin.Default()
	setupRoutes(router, dashboardService, exportService, settingsService)

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(
	router *gin.Engine,
	dashboardService *services.DashboardService,
	exportService *services.ExportService,
	settingsService *services.SettingsService,
) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(dashboardService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, exportService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	healthHandler := handlers.NewHealthHandler()

	api := router.Group("/api")
	{
		api.POST("/auth/validate", authHandler.ValidateToken)

		api.GET("/settings", settingsHandler.Get)
		api.PUT("/settings/token", settingsHandler.SaveToken)
		api.PUT("/settings/poll-interval", settingsHandler.SavePollInterval)

		dashboard := api.Group("/dashboard")
		dashboard.Use(middleware.RequireToken(settingsService))
		{
			dashboard.GET("", dashboardHandler.Fetch)
			dashboard.GET("/export", dashboardHandler.Export)
		}
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
