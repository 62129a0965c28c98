package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir:      DefaultBaseDir(),
		RecipeDBPath: DefaultRecipeDBPath(),

		Calendar: CalendarConfig{
			Name:    "Family",
			Timeout: 30 * time.Second,
		},

		Reminders: RemindersConfig{
			ListName: "Grocery",
			Timeout:  30 * time.Second,
		},
	}
}
