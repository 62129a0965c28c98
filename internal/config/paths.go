package config

import (
	"os"
	"path/filepath"
)

// Paths contains commonly used file paths.
type Paths struct {
	Ledger   string // Meal ledger SQLite database
	RecipeDB string // Read-only Mela recipe database
	Logs     string // Log directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	ledger := cfg.LedgerPath
	if ledger == "" {
		ledger = filepath.Join(cfg.BaseDir, "meals.db")
	}
	return Paths{
		Ledger:   ledger,
		RecipeDB: cfg.RecipeDBPath,
		Logs:     filepath.Join(cfg.BaseDir, "logs"),
	}
}

// DefaultBaseDir returns the default base directory (~/.larder).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".larder"
	}
	return filepath.Join(home, ".larder")
}

// DefaultRecipeDBPath returns the standard location of the Mela recipe
// database inside its app group container.
func DefaultRecipeDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library/Group Containers/66JC38RDUD.recipes.mela/Data/Curcuma.sqlite")
}
