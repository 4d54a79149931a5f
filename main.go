package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internaldb "venue-service/internal/database"
	"venue-service/internal/di"
	"venue-service/pkg/config"
	"venue-service/pkg/database"
	"venue-service/pkg/logger"
	"venue-service/pkg/middleware"
	"venue-service/pkg/redis"
	"venue-service/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting venue service",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn("Failed to initialize telemetry", zap.Error(err))
	} else if telemetryCfg.Enabled {
		appLog.Info("Telemetry initialized", zap.String("collector", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection; attempts are bounded so a dead
	// database fails the process instead of looping forever.
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
		MaxRetries:      cfg.Database.MaxRetries,
		RetryInterval:   cfg.Database.RetryInterval,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgresWithCallback(ctx, dbCfg, func(attempt int, err error, next time.Duration) {
		appLog.Warn("Database connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("next_attempt_in", next),
			zap.Error(err),
		)
	})
	if err != nil {
		appLog.Fatal("Database connection failed", zap.Error(err))
	}
	defer db.Close()
	appLog.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Apply the schema unless an external migration flow owns it
	if cfg.Database.Bootstrap {
		if err := internaldb.Bootstrap(ctx, db.Pool()); err != nil {
			appLog.Fatal("Schema bootstrap failed", zap.Error(err))
		}
		appLog.Info("Schema bootstrap complete")
	}

	// Initialize Redis connection (optional; reads fall back to the
	// database when it is absent).
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := &redis.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}
		redisClient, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn("Redis connection failed, caching disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info("Redis connected", zap.String("addr", redisCfg.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Logger: appLog,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/login", container.AuthHandler.Login)

		api.GET("/zones", container.ZoneHandler.List)
		api.POST("/zones", container.ZoneHandler.Create)
		api.PUT("/zones/:id", container.ZoneHandler.Update)
		api.DELETE("/zones/:id", container.ZoneHandler.Delete)

		api.GET("/tours", container.TourHandler.List)
		api.POST("/tours", container.TourHandler.Create)

		api.GET("/participants", container.ParticipantHandler.List)
		api.POST("/participants", container.ParticipantHandler.Register)
		api.PUT("/participants/:id", container.ParticipantHandler.Update)
		api.DELETE("/participants/:id", container.ParticipantHandler.Delete)

		api.GET("/roles", container.ParticipantHandler.ListRoles)

		api.POST("/book", container.BookingHandler.Book)
		api.POST("/move", container.BookingHandler.Move)
	}

	// Frontend assets, when a directory is configured
	if cfg.App.StaticDir != "" {
		router.Static("/static", cfg.App.StaticDir)
		router.StaticFile("/", cfg.App.StaticDir+"/index.html")
		appLog.Info("Serving static assets", zap.String("dir", cfg.App.StaticDir))
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info("Venue service listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLog.Info("Server exited gracefully")
}
