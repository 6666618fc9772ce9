package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/jobpulse/gateway/config"
	_ "github.com/jobpulse/gateway/docs"
	"github.com/jobpulse/gateway/handlers"
	"github.com/jobpulse/gateway/intake"
	"github.com/jobpulse/gateway/logger"
	"github.com/jobpulse/gateway/search"
	"github.com/jobpulse/gateway/session"
	"github.com/jobpulse/gateway/upstream"
)

// @title JobPulse Gateway API
// @version 1.0
// @description Session-backed gateway for the job-search UI: resume parsing, realtime job search, match scoring and filtered result views.

// @contact.name API Support
// @contact.email support@jobpulse.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	zlog, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer zlog.Sync()

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upstream service clients
	parseClient := upstream.NewParseClient(cfg)
	searchClient := upstream.NewSearchClient(cfg)
	editsClient := upstream.NewEditsClient(cfg)

	// Core components
	resumeIntake := intake.New(parseClient, zlog)
	samples := search.NewSampleGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	invoker := search.NewInvoker(searchClient, samples, zlog)

	// Sessions
	tokens := session.NewTokenService(cfg)
	store := session.NewStore(time.Duration(cfg.SessionExpiryHours) * time.Hour)

	// Create handlers
	resumeHandler := handlers.NewResumeHandler(resumeIntake, editsClient, zlog)
	searchHandler := handlers.NewSearchHandler(invoker, zlog)
	prefsHandler := handlers.NewPrefsHandler()

	handlers.RegisterValidators()

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the page layer
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(session.Middleware(tokens, store))
	{
		v1 := api.Group("/v1")
		{
			v1.POST("/resume/parse", resumeHandler.ParseResume)
			v1.DELETE("/resume", resumeHandler.ResetResume)
			v1.POST("/resume/edits", resumeHandler.SaveEdits)

			v1.GET("/jobs", searchHandler.ListJobs)
			v1.GET("/jobs/:index/detail", searchHandler.JobDetail)

			v1.GET("/preferences/theme", prefsHandler.GetTheme)
			v1.PUT("/preferences/theme", prefsHandler.SetTheme)
		}

		api.POST("/v2/search-realtime", searchHandler.SearchRealtime)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited gracefully")
}
