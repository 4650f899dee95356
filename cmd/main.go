package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"TerraNebular-Backend/internal/database"
	"TerraNebular-Backend/internal/domain/service"
	"TerraNebular-Backend/internal/handler"
	"TerraNebular-Backend/internal/infrastructure/ai"
	infraDB "TerraNebular-Backend/internal/infrastructure/database"
	"TerraNebular-Backend/internal/repository"
	"TerraNebular-Backend/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	claudeAPIKey := os.Getenv("CLAUDE_API_KEY")
	if claudeAPIKey == "" {
		log.Fatal("CLAUDE_API_KEY environment variable not set")
	}

	fmt.Println("Initializing PostgreSQL client...")
	postgresClient, err := infraDB.NewPostgreSQLClient()
	if err != nil {
		log.Fatalf("PostgreSQL initialization failed: %v", err)
	}
	defer postgresClient.Close()

	fmt.Println("Initializing Supabase client...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		log.Fatalf("Supabase initialization failed: %v", err)
	}

	claudeClient := ai.NewClaudeClient(claudeAPIKey)

	// Dependency injection
	zoningRepo := repository.NewPostgresZoningRepository(postgresClient)
	catalogRepo := repository.NewSupabaseZoneCatalogRepository(supabaseClient)
	cacheRepo := repository.NewPostgresAnswerCacheRepository(postgresClient)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(postgresClient)
	answerRepo := ai.NewClaudeAnswerRepository(claudeClient)

	locationService := service.NewLocationIntelligenceService(zoningRepo)
	zoningUseCase := usecase.NewZoningUseCase(locationService, zoningRepo, catalogRepo)
	askUseCase := usecase.NewAskUseCase(locationService, answerRepo, cacheRepo, analyticsRepo, claudeClient.Model())

	zoningHandler := handler.NewZoningHandler(zoningUseCase)
	askHandler := handler.NewAskHandler(askUseCase)

	generalLimiter := handler.NewIPRateLimiter(100, 20)
	aiLimiter := handler.NewIPRateLimiter(10, 3)

	r := gin.Default()
	r.Use(generalLimiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		if err := postgresClient.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "TerraNebular-Backend",
		})
	})

	api := r.Group("/api")
	{
		zoning := api.Group("/zoning")
		{
			zoning.GET("/info", zoningHandler.GetZoningInfo)
			zoning.GET("/nearby", zoningHandler.GetNearbyZones)
			zoning.GET("/regulations", zoningHandler.ListRegulations)
			zoning.GET("/regulations/:code", zoningHandler.GetZoneRegulation)
			zoning.GET("/classify", zoningHandler.ClassifyUse)
			zoning.GET("/boundaries", zoningHandler.GetBoundaries)
			zoning.GET("/stats", zoningHandler.GetStats)
		}

		zones := api.Group("/zones")
		{
			zones.GET("", zoningHandler.GetAllZones)
			zones.GET("/search", zoningHandler.SearchZones)
			zones.GET("/phase/:phase", zoningHandler.GetZonesByPhase)
		}

		api.POST("/ai/question", aiLimiter.Middleware(), askHandler.AskQuestion)
	}

	// Hourly cache sweep keeps the response table from growing without
	// bound between deployments.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				removed, err := askUseCase.SweepCache(sweepCtx)
				if err != nil {
					log.Printf("⚠️ Cache sweep failed: %v", err)
					continue
				}
				if removed > 0 {
					log.Printf("🧹 Swept %d expired cached answers", removed)
				}
			case <-sweepCtx.Done():
				return
			}
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("TerraNebular-Backend server starting on :%s...\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	fmt.Println("Server exited")
}
