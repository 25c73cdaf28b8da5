// internal/database/postgres.go
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"status-service/internal/config"
	"status-service/internal/model"
)

var (
	globalDB *gorm.DB
	dbMutex  sync.RWMutex
)

// GetDB returns the current database connection (nil if not connected)
func GetDB() *gorm.DB {
	dbMutex.RLock()
	defer dbMutex.RUnlock()
	return globalDB
}

// SetDB sets the global database connection
func SetDB(db *gorm.DB) {
	dbMutex.Lock()
	defer dbMutex.Unlock()
	globalDB = db
}

// InitPostgres opens the PostgreSQL connection and runs migrations.
// Connection failure is returned to the caller; the app keeps running so
// orchestrators don't restart-loop the pod.
func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url is not configured")
	}

	logLevel := logger.Silent
	if cfg.Server.Env == "dev" {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	var conn *gorm.DB

	done := make(chan bool, 1)
	go func() {
		conn, err = gorm.Open(postgres.Open(cfg.Database.URL), gormConfig)
		done <- true
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("database connection timeout")
	case <-done:
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := autoMigrate(conn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	SetDB(conn)
	return conn, nil
}

// InitPostgresAsync retries the connection in the background without
// blocking startup.
func InitPostgresAsync(cfg *config.Config, retryInterval time.Duration, log *zap.Logger) {
	go func() {
		for {
			if GetDB() != nil {
				return
			}

			if _, err := InitPostgres(cfg); err != nil {
				log.Warn("DB connection failed, retrying",
					zap.Duration("retryInterval", retryInterval),
					zap.Error(err))
				time.Sleep(retryInterval)
				continue
			}
			log.Info("PostgreSQL connected and migrated")
			return
		}
	}()
}

// autoMigrate runs database migrations
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserStatus{},
	)
}
