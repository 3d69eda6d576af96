package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/horizonhq/horizon/backend/internal/cache"
	"github.com/horizonhq/horizon/backend/internal/config"
	"github.com/horizonhq/horizon/backend/internal/handlers"
	"github.com/horizonhq/horizon/backend/internal/logger"
	"github.com/horizonhq/horizon/backend/internal/middleware"
	"github.com/horizonhq/horizon/backend/internal/repository"
	"github.com/horizonhq/horizon/backend/internal/service"
	"github.com/horizonhq/horizon/backend/pkg/supabase"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	logger.SetDefault(log)

	log.Info("starting Horizon API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL))

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Analytics payloads are cached in Redis when configured; otherwise every
	// request recomputes from the journal table.
	analyticsCache := cache.NewNoop()
	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.DialRedis(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		analyticsCache = cache.NewRedis(redisClient)
		log.Info("analytics cache enabled")
	} else {
		log.Warn("REDIS_URL not set, analytics caching disabled")
	}

	// Initialize repositories
	journalRepo := repository.NewJournalRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)

	// Initialize services
	journalService := service.NewJournalService(journalRepo, analyticsCache)
	analyticsService := service.NewAnalyticsService(journalRepo, analyticsCache)
	authService := service.NewAuthService(supabaseClient, userRepo)

	// Initialize handlers
	journalHandler := handlers.NewJournalHandler(journalService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
			auth.PATCH("/profile", middleware.Auth(supabaseClient), authHandler.UpdateProfile)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Journal routes
			protected.POST("/journals", journalHandler.CreateEntry)
			protected.GET("/journals", journalHandler.ListEntries)
			protected.GET("/journals/:date", journalHandler.GetEntry)
			protected.PATCH("/journals/:date", journalHandler.UpdateEntry)
			protected.DELETE("/journals/:date", journalHandler.DeleteEntry)

			// Analytics routes
			protected.GET("/analytics", analyticsHandler.GetRange)
			protected.GET("/analytics/insight", analyticsHandler.GetInsight)
			protected.GET("/analytics/streaks", analyticsHandler.GetStreaks)
			protected.GET("/analytics/risk", analyticsHandler.GetRisk)
			protected.GET("/analytics/highlights", analyticsHandler.GetHighlights)

			// AI overview
			protected.POST("/ai/overview", analyticsHandler.GetOverview)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
