package cli

import (
	"fmt"
	"strings"

	"github.com/larderhq/larder/internal/models"
	"github.com/larderhq/larder/internal/planner"
	"github.com/spf13/cobra"
)

var (
	logDate     string
	logTags     string
	logRecipeID int64
	logPortions int
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:   "log <title>",
	Short: "Record a cooked meal in the ledger",
	Long: `Record a cooked meal in the meal ledger.

The date defaults to today. Tags are free-form, comma-separated labels
used later by history filters and suggestions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date cooked (YYYY-MM-DD, default today)")
	logCmd.Flags().StringVar(&logTags, "tags", "", "comma-separated tags, e.g. 'quick,vegetarian'")
	logCmd.Flags().Int64Var(&logRecipeID, "recipe-id", 0, "recipe id to link this meal to")
	logCmd.Flags().IntVar(&logPortions, "portions", 0, "number of portions cooked")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-form notes")
}

func runLog(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("log", err)
	}
	defer func() { _ = database.Close() }()

	logArgs := planner.LogArgs{
		Title: title,
		Date:  logDate,
		Tags:  models.ParseTags(logTags),
		Notes: logNotes,
	}
	if logRecipeID > 0 {
		id := logRecipeID
		logArgs.RecipeID = &id
	}
	if logPortions > 0 {
		p := logPortions
		logArgs.Portions = &p
	}

	p := planner.New(database, nil, nil)
	meal, err := p.Log(cmd.Context(), logArgs)
	if err != nil {
		return trackCLIError("log", fmt.Errorf("log meal: %w", err))
	}

	telemetryClient.TrackMealLogged(meal.RecipeID != nil, len(meal.Tags), "cli")

	fmt.Printf("Logged #%d: %s on %s", meal.ID, meal.Title, meal.Date)
	if len(meal.Tags) > 0 {
		fmt.Printf(" [%s]", meal.Tags.String())
	}
	fmt.Println()

	return nil
}
