package database

import (
	"errors"
	"fmt"
	"time"

	"agency_backoffice/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrMissingDatabaseDSN = errors.New("missing DATABASE_DSN")

// ConnectRelational opens the relational store and migrates the given models.
//
// Postgres is the production driver; sqlite is accepted for local runs and tests.
// The connection is retried because the database container usually starts after the API.
func ConnectRelational(cfg config.Config, log *zap.Logger, models ...any) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, ErrMissingDatabaseDSN
	}

	dialector, err := dialectorFor(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger:         newGormLogger(log, logger.Error),
		TranslateError: true,
	}
	if cfg.DatabaseDebug {
		gormCfg.Logger = newGormLogger(log, logger.Info)
	}

	tries := cfg.DatabaseConnectTries
	if tries < 1 {
		tries = 1
	}

	var db *gorm.DB
	for attempt := 1; attempt <= tries; attempt++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		log.Warn("database not ready", zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DatabaseConnMaxLife)

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.DatabaseDriver))
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres", "":
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}
