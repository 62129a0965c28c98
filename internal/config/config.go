// Package config handles application configuration management.
package config

import (
	"os"
	"time"
)

// Config holds all application configuration. It is loaded once at startup
// and passed explicitly to the components that need it; there is no
// process-wide mutable state.
type Config struct {
	// Base directory for all Larder data (~/.larder)
	BaseDir string

	// LedgerPath overrides the meal ledger database location.
	// Empty means the default under BaseDir.
	LedgerPath string

	// RecipeDBPath is the location of the Mela recipe database.
	RecipeDBPath string

	// Calendar holds Calendar.app integration settings.
	Calendar CalendarConfig

	// Reminders holds Reminders.app integration settings.
	Reminders RemindersConfig

	// Debug enables verbose database logging.
	Debug bool
}

// CalendarConfig holds Calendar.app settings.
type CalendarConfig struct {
	// Name of the calendar meals are scheduled on.
	Name string
	// Timeout bounds a single AppleScript call to Calendar.app.
	Timeout time.Duration
}

// RemindersConfig holds Reminders.app settings.
type RemindersConfig struct {
	// ListName is the reminders list used for groceries.
	ListName string
	// Timeout bounds a single AppleScript call to Reminders.app.
	Timeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("LARDER_HOME"); dir != "" {
		cfg.BaseDir = dir
	}

	if path := os.Getenv("LARDER_MEAL_LOG_PATH"); path != "" {
		cfg.LedgerPath = path
	}

	if path := os.Getenv("LARDER_RECIPE_DB_PATH"); path != "" {
		cfg.RecipeDBPath = path
	}

	if name := os.Getenv("LARDER_CALENDAR_NAME"); name != "" {
		cfg.Calendar.Name = name
	}

	if name := os.Getenv("LARDER_GROCERY_LIST"); name != "" {
		cfg.Reminders.ListName = name
	}

	if os.Getenv("LARDER_DEBUG") == "1" {
		cfg.Debug = true
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	return os.MkdirAll(cfg.BaseDir, 0755)
}
