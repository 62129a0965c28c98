// Package db provides a GORM-based storage layer for the meal ledger.
// It uses the pure-Go SQLite driver.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/larderhq/larder/internal/models"
)

// DB wraps the GORM database connection with ledger-specific operations.
type DB struct {
	*gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path        string
	Debug       bool
	MaxIdleConn int
	MaxOpenConn int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	}
}

// New creates a new database connection and runs migrations.
func New(cfg Config) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %v", ErrStorageUnavailable, err)
	}

	// Configure GORM logger
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	// DELETE journal mode for simpler transaction handling; busy_timeout
	// bounds the wait for the database lock.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.Path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true, // Each create/update is a single self-contained write
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	// Configure connection pool. A single writer is sufficient: the ledger
	// accepts one logical operation at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: get sql.DB: %v", ErrStorageUnavailable, err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	wrapped := &DB{DB: db, path: cfg.Path}

	if err := wrapped.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := wrapped.seedAppState(); err != nil {
		return nil, fmt.Errorf("seed app state: %w", err)
	}

	return wrapped, nil
}

// migrate runs GORM auto-migrations for all models.
func (db *DB) migrate() error {
	return db.AutoMigrate(
		&models.Meal{},
		&models.AppState{},
	)
}

// seedAppState inserts the default app state row if not present.
func (db *DB) seedAppState() error {
	state := models.AppState{ID: "default"}
	return db.Where("id = ?", "default").FirstOrCreate(&state).Error
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the database connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction executes a function within a database transaction.
// The callback receives a *DB wrapper that uses the transaction.
func (d *DB) Transaction(fc func(tx *DB) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		wrappedTx := &DB{DB: tx, path: d.path}
		return fc(wrappedTx)
	})
}

// GetStats returns aggregate statistics about the ledger.
func (db *DB) GetStats() (*models.LedgerStats, error) {
	var stats models.LedgerStats

	if err := db.Model(&models.Meal{}).Count(&stats.TotalMeals).Error; err != nil {
		return nil, fmt.Errorf("count meals: %w", err)
	}

	byStatus := []struct {
		Status models.Status
		N      int64
	}{}
	err := db.Model(&models.Meal{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	for _, row := range byStatus {
		switch row.Status {
		case models.StatusPlanned:
			stats.PlannedMeals = row.N
		case models.StatusCooked:
			stats.CookedMeals = row.N
		case models.StatusSkipped:
			stats.SkippedMeals = row.N
		}
	}

	// Get database file size
	if info, err := os.Stat(db.path); err == nil {
		stats.LedgerBytes = info.Size()
	}

	stats.LastUpdated = time.Now()

	return &stats, nil
}
