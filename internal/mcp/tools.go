package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the Larder MCP server.

// searchRecipesTool returns the larder_search_recipes tool definition.
func searchRecipesTool() mcp.Tool {
	return mcp.NewTool("larder_search_recipes",
		mcp.WithDescription("Search the Mela recipe database by title or ingredient. Case-insensitive substring match, results ordered by title."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term matched against recipe titles and ingredients"),
		),
	)
}

// getRecipeTool returns the larder_get_recipe tool definition.
func getRecipeTool() mcp.Tool {
	return mcp.NewTool("larder_get_recipe",
		mcp.WithDescription("Get full details for a recipe including ingredients, instructions, notes, nutrition, and timing."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The recipe's numeric identifier"),
		),
	)
}

// listRecipesTool returns the larder_list_recipes tool definition.
func listRecipesTool() mcp.Tool {
	return mcp.NewTool("larder_list_recipes",
		mcp.WithDescription("List recipes from the Mela database, optionally filtered to favorites or the want-to-cook queue."),
		mcp.WithString("filter",
			mcp.Description("Filter: 'all', 'favorites', or 'want_to_cook' (default: all)"),
		),
	)
}

// scheduleMealTool returns the larder_schedule_meal tool definition.
func scheduleMealTool() mcp.Tool {
	return mcp.NewTool("larder_schedule_meal",
		mcp.WithDescription("Schedule a meal: creates a Calendar event and, on success, records a planned entry in the meal ledger. If the name matches a recipe title exactly the entry is linked to that recipe."),
		mcp.WithString("recipe_name",
			mcp.Required(),
			mcp.Description("Name of the meal or recipe to schedule"),
		),
		mcp.WithString("date",
			mcp.Description("Date in YYYY-MM-DD format (default: today)"),
		),
		mcp.WithString("time",
			mcp.Description("Start time in HH:MM 24-hour format (default: 18:00)"),
		),
	)
}

// logMealTool returns the larder_log_meal tool definition.
func logMealTool() mcp.Tool {
	return mcp.NewTool("larder_log_meal",
		mcp.WithDescription("Record a cooked meal in the ledger. Pure ledger write; no calendar involvement."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("What was cooked"),
		),
		mcp.WithString("date",
			mcp.Description("Date in YYYY-MM-DD format (default: today)"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags, e.g. 'quick,vegetarian'"),
		),
		mcp.WithNumber("recipe_id",
			mcp.Description("Recipe id to link this meal to"),
		),
		mcp.WithNumber("portions",
			mcp.Description("Number of portions cooked"),
		),
		mcp.WithString("notes",
			mcp.Description("Free-form notes"),
		),
	)
}

// updateMealTool returns the larder_update_meal tool definition.
func updateMealTool() mcp.Tool {
	return mcp.NewTool("larder_update_meal",
		mcp.WithDescription("Update fields of an existing ledger entry. Only the fields provided are changed; typical use is marking a planned meal cooked or skipped."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The ledger entry's numeric identifier"),
		),
		mcp.WithString("date",
			mcp.Description("New date in YYYY-MM-DD format"),
		),
		mcp.WithString("title",
			mcp.Description("New title"),
		),
		mcp.WithNumber("recipe_id",
			mcp.Description("New recipe link"),
		),
		mcp.WithString("tags",
			mcp.Description("Replacement comma-separated tags"),
		),
		mcp.WithString("status",
			mcp.Description("New status: 'planned', 'cooked', or 'skipped'"),
		),
		mcp.WithNumber("portions",
			mcp.Description("New portion count"),
		),
		mcp.WithString("notes",
			mcp.Description("Replacement notes"),
		),
	)
}

// mealHistoryTool returns the larder_meal_history tool definition.
func mealHistoryTool() mcp.Tool {
	return mcp.NewTool("larder_meal_history",
		mcp.WithDescription("Query the meal ledger. All filters are optional and combine; results are ordered newest first."),
		mcp.WithString("start_date",
			mcp.Description("Inclusive lower date bound, YYYY-MM-DD"),
		),
		mcp.WithString("end_date",
			mcp.Description("Inclusive upper date bound, YYYY-MM-DD"),
		),
		mcp.WithString("status",
			mcp.Description("Exact status filter: 'planned', 'cooked', or 'skipped'"),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tag terms; every term must appear in the entry's tags"),
		),
	)
}

// reviewMealsTool returns the larder_review_meals tool definition.
func reviewMealsTool() mcp.Tool {
	return mcp.NewTool("larder_review_meals",
		mcp.WithDescription("List recently planned meals that were never marked cooked or skipped, so their outcomes can be reconciled."),
		mcp.WithNumber("days",
			mcp.Description("How many days back to look (default: 7)"),
		),
	)
}

// mealSuggestionsTool returns the larder_meal_suggestions tool definition.
func mealSuggestionsTool() mcp.Tool {
	return mcp.NewTool("larder_meal_suggestions",
		mcp.WithDescription("Analyze meal history for suggestions: dishes not cooked lately, tag balance, and frequently cooked ad-hoc meals."),
		mcp.WithNumber("days_back",
			mcp.Description("Analysis window in days (default: 90)"),
		),
	)
}

// scheduledMealsTool returns the larder_scheduled_meals tool definition.
func scheduledMealsTool() mcp.Tool {
	return mcp.NewTool("larder_scheduled_meals",
		mcp.WithDescription("List upcoming meal events from the configured calendar."),
		mcp.WithNumber("days",
			mcp.Description("How many days ahead to look (default: 7)"),
		),
		mcp.WithNumber("past_days",
			mcp.Description("How many past days to include (default: 0)"),
		),
	)
}

// ledgerStatsTool returns the larder_ledger_stats tool definition.
func ledgerStatsTool() mcp.Tool {
	return mcp.NewTool("larder_ledger_stats",
		mcp.WithDescription("Get meal ledger statistics: totals by status and database size."),
	)
}

// groceryAddTool returns the larder_grocery_add tool definition.
func groceryAddTool() mcp.Tool {
	return mcp.NewTool("larder_grocery_add",
		mcp.WithDescription("Add items to the grocery list in Reminders. Creates the list if it does not exist."),
		mcp.WithArray("items",
			mcp.Required(),
			mcp.Description("Item names to add"),
		),
	)
}

// groceryClearTool returns the larder_grocery_clear tool definition.
func groceryClearTool() mcp.Tool {
	return mcp.NewTool("larder_grocery_clear",
		mcp.WithDescription("Remove all incomplete items from the grocery list in Reminders."),
	)
}

// groceryListTool returns the larder_grocery_list tool definition.
func groceryListTool() mcp.Tool {
	return mcp.NewTool("larder_grocery_list",
		mcp.WithDescription("List the incomplete items on the grocery list in Reminders."),
	)
}
