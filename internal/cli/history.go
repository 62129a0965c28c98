package cli

import (
	"fmt"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyStart  string
	historyEnd    string
	historyStatus string
	historyTags   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the meal ledger, newest first",
	Long: `Show entries from the meal ledger, newest first.

All filters are optional and combine. Tag terms are comma-separated and
every term must appear in an entry's tags:

  larder history --start 2026-08-01 --status cooked --tags quick,vegetarian`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyStart, "start", "", "inclusive lower date bound (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyEnd, "end", "", "inclusive upper date bound (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "filter by status: planned, cooked, or skipped")
	historyCmd.Flags().StringVar(&historyTags, "tags", "", "comma-separated tag terms, all must match")
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("history", err)
	}
	defer func() { _ = database.Close() }()

	meals, err := database.FindMeals(db.MealFilter{
		StartDate: historyStart,
		EndDate:   historyEnd,
		Status:    models.Status(historyStatus),
		Tags:      historyTags,
	})
	if err != nil {
		return trackCLIError("history", fmt.Errorf("query ledger: %w", err))
	}

	telemetryClient.TrackHistoryViewed(len(meals), "cli")

	if len(meals) == 0 {
		fmt.Println("No meals found.")
		return nil
	}

	printMeals(meals)
	return nil
}

// printMeals renders ledger entries one per block.
func printMeals(meals []models.Meal) {
	for _, m := range meals {
		fmt.Printf("#%d  %s  %s (%s)\n", m.ID, m.Date, m.Title, m.Status)
		if len(m.Tags) > 0 {
			fmt.Printf("     tags: %s\n", m.Tags.String())
		}
		if m.RecipeID != nil {
			fmt.Printf("     recipe: #%d\n", *m.RecipeID)
		}
		if m.Portions != nil {
			fmt.Printf("     portions: %d\n", *m.Portions)
		}
		if m.Notes != "" {
			fmt.Printf("     notes: %s\n", m.Notes)
		}
	}
}
