package config

import (
	"fmt"

	"officer-mobility/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(cfg DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s@%s:%d: %w", cfg.Name, cfg.Host, cfg.Port, err)
	}
	log.Info("database connected", zap.String("host", cfg.Host), zap.String("database", cfg.Name))

	// Auto Migration: tables follow the structs in internal/model
	if err := db.AutoMigrate(&model.Institution{}, &model.Officer{}, &model.Assignment{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
