// Package sqlite provides SQLite database setup, used for local development
// and repository tests.
package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	gormmodels "github.com/pantrychef/v2/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and migrates a SQLite database. An empty path means
// in-memory.
func SetupDatabase(dbPath string, logLevel gormlogger.LogLevel) (*gorm.DB, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&gormmodels.UserModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
