package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show meal ledger statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("stats", err)
	}
	defer func() { _ = database.Close() }()

	stats, err := database.GetStats()
	if err != nil {
		return trackCLIError("stats", fmt.Errorf("ledger stats: %w", err))
	}

	fmt.Printf("LEDGER (%s)\n", database.Path())
	fmt.Printf("  Total meals:   %d\n", stats.TotalMeals)
	fmt.Printf("  Cooked:        %d\n", stats.CookedMeals)
	fmt.Printf("  Planned:       %d\n", stats.PlannedMeals)
	fmt.Printf("  Skipped:       %d\n", stats.SkippedMeals)
	fmt.Printf("  Database size: %d bytes\n", stats.LedgerBytes)
	if !stats.LastUpdated.IsZero() {
		fmt.Printf("  Last updated:  %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	}
	return nil
}
