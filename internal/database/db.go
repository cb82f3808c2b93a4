package database

import (
	"fmt"

	"github.com/mkendrick/jobtrack/internal/config"
	"github.com/mkendrick/jobtrack/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection and runs migrations.
// TranslateError lets services match duplicate-key and not-found
// conditions against the gorm sentinel errors.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}
	return db, nil
}

// Migrate runs auto migration for all models. Exported so tests can
// prepare an in-memory store with the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.JobApplication{},
		&models.Tag{},
		&models.ApplicationTag{},
	)
}
