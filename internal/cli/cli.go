// Package cli provides the command-line interface for Larder.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/larderhq/larder/internal/applescript"
	"github.com/larderhq/larder/internal/calendar"
	"github.com/larderhq/larder/internal/config"
	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/recipes"
	"github.com/larderhq/larder/internal/reminders"
	"github.com/larderhq/larder/internal/telemetry"
	"github.com/larderhq/larder/pkg/version"
	"github.com/spf13/cobra"
)

var telemetryClient telemetry.Client

var commandStartTime time.Time

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Personal meal planning from your terminal",
	Long: `Personal meal planning from your terminal.

Larder links your Mela recipe library, Apple Calendar, and Apple Reminders
to an append-mostly meal ledger: log what you cooked, schedule what you'll
cook, and get suggestions grounded in your own history.

Telemetry:
  Telemetry is enabled by default, always anonymous, and will never track
  meal titles, tags, notes, or any other personal content.

  It will only be used to improve Larder.

  Opt-out with:
  	LARDER_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commandStartTime = time.Now()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cmd.Name() != "larder" {
			durationMs := time.Since(commandStartTime).Milliseconds()
			hasFlags := cmd.Flags().NFlag() > 0
			telemetryClient.TrackCLICommandExecuted(cmd.Name(), hasFlags, durationMs)
		}

		// Track help viewed if --help was used
		if cmd.Flags().Changed("help") {
			telemetryClient.TrackCLIHelpViewed(cmd.Name(), os.Args[1:])
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(agendaCmd)
	rootCmd.AddCommand(groceryCmd)
	rootCmd.AddCommand(statsCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context, tc telemetry.Client) error {
	if tc == nil {
		tc = telemetry.New(nil)
	}
	telemetryClient = tc

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)

	if rootCmd.CalledAs() != "" && rootCmd.CalledAs() != "larder" {
		durationMs := time.Since(commandStartTime).Milliseconds()
		telemetryClient.TrackAppExited("cli", durationMs)
	}

	return err
}

// openLedger loads configuration and opens the meal ledger. The caller
// owns the returned database and must close it.
func openLedger() (*config.Config, *db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	paths := config.GetPaths(cfg)
	database, err := db.New(db.DefaultConfig(paths.Ledger))
	if err != nil {
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}
	return cfg, database, nil
}

// openRecipeStore opens the Mela database. A missing database file is
// not an error; the store is simply nil and callers degrade.
func openRecipeStore(cfg *config.Config) (*recipes.Store, error) {
	paths := config.GetPaths(cfg)
	store, err := recipes.Open(paths.RecipeDB)
	if err != nil {
		if errors.Is(err, recipes.ErrDatabaseMissing) {
			return nil, nil
		}
		return nil, fmt.Errorf("open recipe database: %w", err)
	}
	return store, nil
}

// newCalendarClient builds the Calendar bridge from config.
func newCalendarClient(cfg *config.Config) *calendar.Client {
	return calendar.New(applescript.OSARunner{Timeout: cfg.Calendar.Timeout}, cfg.Calendar.Name)
}

// newRemindersClient builds the Reminders bridge from config.
func newRemindersClient(cfg *config.Config) *reminders.Client {
	return reminders.New(applescript.OSARunner{Timeout: cfg.Reminders.Timeout})
}

// trackCLIError wraps an error with telemetry tracking.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	errorType := classifyError(err)
	telemetryClient.TrackCLIError(cmdName, errorType)
	return err
}

// classifyError determines the error type for telemetry.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "ledger", "db"):
		return "database_error"
	case containsAny(errStr, "osascript", "timeout", "calendar", "reminders"):
		return "collaborator_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format", "required"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
