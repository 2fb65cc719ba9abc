// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"

	"github.com/platewise/v1/internal/domain/dish"
	gormModels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.DishModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the dishes table from a loaded catalog. An
// already-populated table is left untouched.
func SeedDatabase(db *gorm.DB, catalog *dish.Catalog) error {
	var count int64
	if err := db.Model(&gormModels.DishModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect dishes table: %w", err)
	}
	if count > 0 {
		return nil // Already seeded
	}

	models := make([]*gormModels.DishModel, 0, catalog.Len())
	for _, d := range catalog.Dishes() {
		models = append(models, gormModels.DishToModel(d))
	}
	if len(models) == 0 {
		return nil
	}

	if err := db.Create(&models).Error; err != nil {
		return fmt.Errorf("failed to seed dishes: %w", err)
	}

	return nil
}

// ParseLogLevel maps a config string onto a GORM log level
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
