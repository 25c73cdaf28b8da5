// @title           User Status Service API
// @version         1.0
// @description     Presence status and status message API

// @host      localhost:8004
// @BasePath  /api/status

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"status-service/internal/config"
	"status-service/internal/database"
	"status-service/internal/router"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Starting Status Service",
		zap.Int("port", cfg.Server.Port),
		zap.String("basePath", cfg.Server.BasePath),
		zap.String("env", cfg.Server.Env))

	// PostgreSQL; retried in the background on failure so the pod stays up
	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Warn("Failed to connect to PostgreSQL on startup, will retry in background",
			zap.Error(err))
		database.InitPostgresAsync(cfg, 5*time.Second, logger)
	} else {
		logger.Info("PostgreSQL connected")
	}

	// Redis is optional; without it status events are not broadcast
	redisClient, err := database.InitRedis(cfg)
	if err != nil {
		logger.Warn("Failed to connect to Redis, status events disabled", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("Redis connected")
	}

	r := router.Setup(cfg, db, redisClient, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Status Service started", zap.String("address", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
