package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/planner"
	"github.com/spf13/cobra"
)

var (
	scheduleDate string
	scheduleTime string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule <recipe-name>",
	Short: "Schedule a meal on the calendar",
	Long: `Schedule a meal: creates a one-hour event on the configured calendar
and records a planned entry in the ledger once the event exists.

If the name matches a recipe title in the Mela database exactly
(case-insensitive), the ledger entry is linked to that recipe.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "event date (YYYY-MM-DD, default today)")
	scheduleCmd.Flags().StringVar(&scheduleTime, "time", "18:00", "event start time (HH:MM)")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	cfg, database, err := openLedger()
	if err != nil {
		return trackCLIError("schedule", err)
	}
	defer func() { _ = database.Close() }()

	store, err := openRecipeStore(cfg)
	if err != nil {
		return trackCLIError("schedule", err)
	}
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	date := scheduleDate
	if date == "" {
		date = time.Now().Format(db.DateFormat)
	}

	var searcher planner.RecipeSearcher
	if store != nil {
		searcher = store
	}
	p := planner.New(database, searcher, newCalendarClient(cfg))

	outcome, err := p.Schedule(cmd.Context(), name, date, scheduleTime)
	if err != nil {
		return trackCLIError("schedule", fmt.Errorf("schedule meal: %w", err))
	}

	telemetryClient.TrackMealScheduled(outcome.RecipeID != nil, outcome.Success)

	if !outcome.Success {
		return trackCLIError("schedule", fmt.Errorf("calendar: %s", outcome.Error))
	}

	fmt.Printf("Scheduled %q on %s at %s (%s calendar)\n", outcome.Title, outcome.Date, outcome.Time, outcome.Calendar)
	if outcome.RecipeID != nil {
		fmt.Printf("Linked to recipe #%d, ledger entry #%d\n", *outcome.RecipeID, outcome.MealID)
	} else {
		fmt.Printf("No matching recipe; recorded ad-hoc as ledger entry #%d\n", outcome.MealID)
	}

	return nil
}
