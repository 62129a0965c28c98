package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reviewDays int

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "List planned meals awaiting reconciliation",
	Long: `List recently planned meals that were never marked cooked or skipped.

Use 'larder update <id> --status cooked' (or skipped) to reconcile them.`,
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().IntVar(&reviewDays, "days", 7, "how many days back to look")
}

func runReview(cmd *cobra.Command, args []string) error {
	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("review", err)
	}
	defer func() { _ = database.Close() }()

	meals, err := database.Unreconciled(reviewDays)
	if err != nil {
		return trackCLIError("review", fmt.Errorf("query planned meals: %w", err))
	}

	telemetryClient.TrackHistoryViewed(len(meals), "cli")

	if len(meals) == 0 {
		fmt.Printf("Nothing to review: no unreconciled planned meals in the last %d days.\n", reviewDays)
		return nil
	}

	fmt.Printf("PLANNED MEALS AWAITING REVIEW (last %d days)\n", reviewDays)
	printMeals(meals)
	fmt.Println("\nReconcile with: larder update <id> --status cooked|skipped")
	return nil
}
