package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rental-marketplace/config"
	redisConn "rental-marketplace/config/redis"
	_ "rental-marketplace/docs" // Swagger docs
	"rental-marketplace/internal/httpserver"
	"rental-marketplace/internal/notification"
	notificationRedis "rental-marketplace/internal/notification/delivery/redis"
	"rental-marketplace/internal/storage"
	"rental-marketplace/pkg/log"
	"rental-marketplace/pkg/ratelimit"
	"rental-marketplace/pkg/scope"
	"rental-marketplace/pkg/tracing"
)

// @title       Rental Marketplace API
// @description Peer-to-peer rentals: listings, wanted requests, conflict-free bookings and match notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rental Marketplace...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing (optional)
	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: httpserver.ServiceName,
	})
	if err != nil {
		logger.Warnf(ctx, "Tracing not available (optional): %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf(ctx, "Tracing shutdown: %v", err)
		}
	}()

	// 4. Storage
	repos, closeDB, err := storage.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer func() {
		if err := closeDB(); err != nil {
			logger.Warnf(ctx, "Database close: %v", err)
		}
	}()

	// 5. Realtime fan-out (optional)
	var publisher notification.Publisher
	if cfg.Redis.Addr != "" {
		client, redisErr := redisConn.Connect(ctx, redisConn.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if redisErr != nil {
			logger.Warnf(ctx, "Redis not available (optional): %v", redisErr)
		} else {
			defer client.Close()
			publisher = notificationRedis.NewPublisher(client, cfg.Redis.Channel)
			logger.Infof(ctx, "Redis fan-out on %s:<user>", cfg.Redis.Channel)
		}
	} else {
		logger.Info(ctx, "Redis skipped: redis.addr is empty")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Timezone:     cfg.Environment.Timezone,
		Repositories: repos,
		Publisher:    publisher,
		JWTManager:   scope.New(cfg.JWT.Secret, cfg.JWT.Issuer),
		Limiter:      ratelimit.New(cfg.RateLimit.BookingPerMin),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
