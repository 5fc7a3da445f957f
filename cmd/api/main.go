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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vinhph2/quizhub-api/internal/api"
	"github.com/vinhph2/quizhub-api/internal/config"
	"github.com/vinhph2/quizhub-api/internal/middleware"
	"github.com/vinhph2/quizhub-api/internal/repository/postgres"
	"github.com/vinhph2/quizhub-api/internal/service"
	"github.com/vinhph2/quizhub-api/pkg/digest"
	"github.com/vinhph2/quizhub-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Ensure the schema exists before serving
	if err := config.Migrate(dbConnections.Writer); err != nil {
		appLogger.Fatal("Failed to migrate database schema", err)
	}

	// Initialize repository and services
	repo := postgres.NewPostgresRepository(dbConnections.Writer, dbConnections.Reader)

	tenantService := service.NewTenantService(repo)
	accountService := service.NewAccountService(repo, digest.FromScheme(cfg.PasswordScheme), appLogger)
	questionService := service.NewQuestionService(repo, appLogger)
	quizService := service.NewQuizService(repo, appLogger)

	// Initialize middleware. Rate limiting needs redis; without REDIS_ADDR
	// the service runs unthrottled.
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	var rateLimitMiddleware *middleware.RateLimitMiddleware
	redisConfig := config.DefaultRedisConfig()
	if redisConfig.Enabled() {
		redisClient, err := redisConfig.GetClient()
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		rateLimitMiddleware = middleware.NewRateLimitMiddleware(redisClient, appLogger)
	} else {
		appLogger.Warn("REDIS_ADDR not set - rate limiting disabled")
	}

	// Initialize server
	server := api.NewServer(
		tenantService,
		accountService,
		questionService,
		quizService,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		cfg.GlobalRateLimit,
	)

	// Initialize router
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	server.SetupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
