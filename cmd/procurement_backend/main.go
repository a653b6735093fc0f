package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/procurement_tracker/internal/core/services"
	"github.com/SscSPs/procurement_tracker/internal/handlers"
	"github.com/SscSPs/procurement_tracker/internal/middleware"
	"github.com/SscSPs/procurement_tracker/internal/notifications"
	"github.com/SscSPs/procurement_tracker/internal/platform/config"
	"github.com/SscSPs/procurement_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/procurement_tracker/internal/utils"
	"github.com/SscSPs/procurement_tracker/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// @title Procurement Tracker API
// @version 1.0
// @description Need expressions, purchase orders and receptions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	if _, err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, database.Up, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			// The catalog cache and the event channel degrade gracefully
			logger.Warn("Redis is not reachable", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		}
		defer redisClient.Close()
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	sinks := []notifications.Sink{notifications.NewLogSink(logger)}
	if posthogClient.IsInitialized() {
		sinks = append(sinks, notifications.NewPosthogSink(posthogClient))
	}
	if redisClient != nil {
		sinks = append(sinks, notifications.NewRedisSink(redisClient, cfg.RedisEventsChannel))
	}
	dispatcher := notifications.NewDispatcher(logger, 1024, 5*time.Second, sinks...)

	repos := pgsql.NewRepositoryProvider(dbPool, redisClient, cfg.CatalogCacheTTL)
	serviceContainer := services.NewServiceContainer(cfg, repos, dispatcher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	// Events of requests that finished before shutdown still get delivered
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Warn("Notification dispatcher did not drain", slog.String("error", err.Error()))
	}
}
