package cli

import (
	"fmt"

	"github.com/larderhq/larder/internal/config"
	"github.com/spf13/cobra"
)

var groceryCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Manage the grocery list in Reminders",
	Long: `Manage the grocery list kept in Apple Reminders.

The list name defaults to "Grocery" and can be changed with
LARDER_GROCERY_LIST.`,
}

var groceryAddCmd = &cobra.Command{
	Use:   "add <item> [item...]",
	Short: "Add items to the grocery list",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGroceryAdd,
}

var groceryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all incomplete items from the grocery list",
	RunE:  runGroceryClear,
}

var groceryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the incomplete items on the grocery list",
	RunE:  runGroceryList,
}

func init() {
	groceryCmd.AddCommand(groceryAddCmd)
	groceryCmd.AddCommand(groceryClearCmd)
	groceryCmd.AddCommand(groceryListCmd)
}

func runGroceryAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("add", fmt.Errorf("load config: %w", err))
	}

	result := newRemindersClient(cfg).Add(cmd.Context(), args, cfg.Reminders.ListName)
	if !result.Success {
		return trackCLIError("add", fmt.Errorf("reminders: %s", result.Error))
	}

	telemetryClient.TrackGroceryUpdated("add", result.Count)

	fmt.Printf("Added %d item(s) to %q.\n", result.Count, result.List)
	return nil
}

func runGroceryClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("clear", fmt.Errorf("load config: %w", err))
	}

	result := newRemindersClient(cfg).Clear(cmd.Context(), cfg.Reminders.ListName)
	if !result.Success {
		return trackCLIError("clear", fmt.Errorf("reminders: %s", result.Error))
	}

	telemetryClient.TrackGroceryUpdated("clear", result.Removed)

	fmt.Printf("Cleared %d item(s) from %q.\n", result.Removed, result.List)
	return nil
}

func runGroceryList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return trackCLIError("list", fmt.Errorf("load config: %w", err))
	}

	result := newRemindersClient(cfg).List(cmd.Context(), cfg.Reminders.ListName)
	if !result.Success {
		return trackCLIError("list", fmt.Errorf("reminders: %s", result.Error))
	}

	if len(result.Items) == 0 {
		fmt.Printf("%q is empty.\n", result.List)
		return nil
	}

	fmt.Printf("%s (%d items)\n", result.List, len(result.Items))
	for _, item := range result.Items {
		fmt.Printf("  - %s\n", item)
	}
	return nil
}
