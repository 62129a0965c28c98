package cli

import (
	"fmt"
	"strconv"

	"github.com/larderhq/larder/internal/models"
	"github.com/spf13/cobra"
)

var (
	updateDate     string
	updateTitle    string
	updateRecipeID int64
	updateTags     string
	updateStatus   string
	updatePortions int
	updateNotes    string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a ledger entry",
	Long: `Update fields of an existing ledger entry.

Only the flags you pass are changed. The typical use is reconciling a
planned meal after the fact:

  larder update 42 --status cooked
  larder update 43 --status skipped --notes "ordered pizza instead"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDate, "date", "", "new date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().Int64Var(&updateRecipeID, "recipe-id", 0, "new recipe link")
	updateCmd.Flags().StringVar(&updateTags, "tags", "", "replacement comma-separated tags")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "new status: planned, cooked, or skipped")
	updateCmd.Flags().IntVar(&updatePortions, "portions", 0, "new portion count")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "replacement notes")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return trackCLIError("update", fmt.Errorf("invalid ledger id %q", args[0]))
	}

	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("update", err)
	}
	defer func() { _ = database.Close() }()

	var patch models.MealPatch
	fieldCount := 0

	if cmd.Flags().Changed("date") {
		patch.Date = &updateDate
		fieldCount++
	}
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
		fieldCount++
	}
	if cmd.Flags().Changed("recipe-id") {
		rid := updateRecipeID
		patch.RecipeID = &rid
		fieldCount++
	}
	if cmd.Flags().Changed("tags") {
		tags := models.ParseTags(updateTags)
		patch.Tags = &tags
		fieldCount++
	}
	if cmd.Flags().Changed("status") {
		status := models.Status(updateStatus)
		patch.Status = &status
		fieldCount++
	}
	if cmd.Flags().Changed("portions") {
		p := updatePortions
		patch.Portions = &p
		fieldCount++
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &updateNotes
		fieldCount++
	}

	meal, err := database.UpdateMeal(id, patch)
	if err != nil {
		return trackCLIError("update", fmt.Errorf("update meal: %w", err))
	}

	telemetryClient.TrackMealUpdated(fieldCount)

	if fieldCount == 0 {
		fmt.Printf("No changes for #%d: %s on %s (%s)\n", meal.ID, meal.Title, meal.Date, meal.Status)
		return nil
	}

	fmt.Printf("Updated #%d: %s on %s (%s)\n", meal.ID, meal.Title, meal.Date, meal.Status)
	return nil
}
