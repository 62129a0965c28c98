package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/models"
	"github.com/larderhq/larder/internal/planner"
	"github.com/larderhq/larder/internal/suggest"
	"github.com/mark3labs/mcp-go/mcp"
)

// Defaults for MCP tool handlers.
const (
	defaultScheduleTime = "18:00"
	defaultReviewDays   = 7
	defaultAgendaDays   = 7
)

// optString extracts an optional string argument.
func optString(arguments map[string]interface{}, key string) string {
	if v, ok := arguments[key].(string); ok {
		return v
	}
	return ""
}

// optDays extracts an optional day-count argument, falling back to
// defaultVal when absent or non-positive.
func optDays(arguments map[string]interface{}, key string, defaultVal int) int {
	if v, ok := arguments[key].(float64); ok && v > 0 {
		return int(v)
	}
	return defaultVal
}

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	if s.telemetry != nil {
		durationMs := time.Since(start).Milliseconds()
		s.telemetry.TrackMCPToolCalled(toolName, durationMs, success)
	}
}

// handleSearchRecipes handles the larder_search_recipes tool.
func (s *Server) handleSearchRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	query, ok := req.Params.Arguments["query"].(string)
	if !ok || query == "" {
		s.trackToolCall("larder_search_recipes", start, false)
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	if s.recipes == nil {
		s.trackToolCall("larder_search_recipes", start, false)
		return mcp.NewToolResultError("recipe database not available"), nil
	}

	results, err := s.recipes.Search(query)
	if err != nil {
		s.trackToolCall("larder_search_recipes", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	data, err := json.Marshal(results)
	if err != nil {
		s.trackToolCall("larder_search_recipes", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackRecipeSearched(len(results), "mcp")
	}

	s.trackToolCall("larder_search_recipes", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleGetRecipe handles the larder_get_recipe tool.
func (s *Server) handleGetRecipe(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	idArg, ok := req.Params.Arguments["id"].(float64)
	if !ok {
		s.trackToolCall("larder_get_recipe", start, false)
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id := int64(idArg)

	if s.recipes == nil {
		s.trackToolCall("larder_get_recipe", start, false)
		return mcp.NewToolResultError("recipe database not available"), nil
	}

	recipe, err := s.recipes.Get(id)
	if err != nil {
		s.trackToolCall("larder_get_recipe", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recipe: %v", err)), nil
	}
	if recipe == nil {
		s.trackToolCall("larder_get_recipe", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("recipe not found: %d", id)), nil
	}

	data, err := json.Marshal(recipe)
	if err != nil {
		s.trackToolCall("larder_get_recipe", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal recipe: %v", err)), nil
	}

	s.trackToolCall("larder_get_recipe", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleListRecipes handles the larder_list_recipes tool.
func (s *Server) handleListRecipes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	filter := optString(req.Params.Arguments, "filter")

	if s.recipes == nil {
		s.trackToolCall("larder_list_recipes", start, false)
		return mcp.NewToolResultError("recipe database not available"), nil
	}

	listings, err := s.recipes.List(filter)
	if err != nil {
		s.trackToolCall("larder_list_recipes", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to list recipes: %v", err)), nil
	}

	data, err := json.Marshal(listings)
	if err != nil {
		s.trackToolCall("larder_list_recipes", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	s.trackToolCall("larder_list_recipes", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleScheduleMeal handles the larder_schedule_meal tool.
func (s *Server) handleScheduleMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	recipeName, ok := req.Params.Arguments["recipe_name"].(string)
	if !ok || recipeName == "" {
		s.trackToolCall("larder_schedule_meal", start, false)
		return mcp.NewToolResultError("recipe_name parameter is required"), nil
	}

	date := optString(req.Params.Arguments, "date")
	if date == "" {
		date = time.Now().Format(db.DateFormat)
	}
	timeOfDay := optString(req.Params.Arguments, "time")
	if timeOfDay == "" {
		timeOfDay = defaultScheduleTime
	}

	outcome, err := s.planner.Schedule(ctx, recipeName, date, timeOfDay)
	if err != nil {
		s.trackToolCall("larder_schedule_meal", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to schedule meal: %v", err)), nil
	}

	data, _ := json.Marshal(outcome)

	if s.telemetry != nil {
		s.telemetry.TrackMealScheduled(outcome.RecipeID != nil, outcome.Success)
	}

	// A calendar failure is a structured outcome, not a tool error.
	s.trackToolCall("larder_schedule_meal", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleLogMeal handles the larder_log_meal tool.
func (s *Server) handleLogMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	title, ok := req.Params.Arguments["title"].(string)
	if !ok || title == "" {
		s.trackToolCall("larder_log_meal", start, false)
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	args := planner.LogArgs{
		Title: title,
		Date:  optString(req.Params.Arguments, "date"),
		Tags:  models.ParseTags(optString(req.Params.Arguments, "tags")),
		Notes: optString(req.Params.Arguments, "notes"),
	}
	if v, ok := req.Params.Arguments["recipe_id"].(float64); ok {
		id := int64(v)
		args.RecipeID = &id
	}
	if v, ok := req.Params.Arguments["portions"].(float64); ok {
		p := int(v)
		args.Portions = &p
	}

	meal, err := s.planner.Log(ctx, args)
	if err != nil {
		s.trackToolCall("larder_log_meal", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to log meal: %v", err)), nil
	}

	data, err := json.Marshal(meal)
	if err != nil {
		s.trackToolCall("larder_log_meal", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal meal: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackMealLogged(meal.RecipeID != nil, len(meal.Tags), "mcp")
	}

	s.trackToolCall("larder_log_meal", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleUpdateMeal handles the larder_update_meal tool.
func (s *Server) handleUpdateMeal(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	idArg, ok := req.Params.Arguments["id"].(float64)
	if !ok {
		s.trackToolCall("larder_update_meal", start, false)
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id := int64(idArg)

	var patch models.MealPatch
	fieldCount := 0

	if v, ok := req.Params.Arguments["date"].(string); ok && v != "" {
		patch.Date = &v
		fieldCount++
	}
	if v, ok := req.Params.Arguments["title"].(string); ok && v != "" {
		patch.Title = &v
		fieldCount++
	}
	if v, ok := req.Params.Arguments["recipe_id"].(float64); ok {
		rid := int64(v)
		patch.RecipeID = &rid
		fieldCount++
	}
	if v, ok := req.Params.Arguments["tags"].(string); ok {
		tags := models.ParseTags(v)
		patch.Tags = &tags
		fieldCount++
	}
	if v, ok := req.Params.Arguments["status"].(string); ok && v != "" {
		status := models.Status(v)
		patch.Status = &status
		fieldCount++
	}
	if v, ok := req.Params.Arguments["portions"].(float64); ok {
		p := int(v)
		patch.Portions = &p
		fieldCount++
	}
	if v, ok := req.Params.Arguments["notes"].(string); ok {
		patch.Notes = &v
		fieldCount++
	}

	meal, err := s.db.UpdateMeal(id, patch)
	if err != nil {
		s.trackToolCall("larder_update_meal", start, false)
		if errors.Is(err, db.ErrMealNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("meal not found: %d", id)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to update meal: %v", err)), nil
	}

	data, err := json.Marshal(meal)
	if err != nil {
		s.trackToolCall("larder_update_meal", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal meal: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackMealUpdated(fieldCount)
	}

	s.trackToolCall("larder_update_meal", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleMealHistory handles the larder_meal_history tool.
func (s *Server) handleMealHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	filter := db.MealFilter{
		StartDate: optString(req.Params.Arguments, "start_date"),
		EndDate:   optString(req.Params.Arguments, "end_date"),
		Status:    models.Status(optString(req.Params.Arguments, "status")),
		Tags:      optString(req.Params.Arguments, "tags"),
	}

	meals, err := s.db.FindMeals(filter)
	if err != nil {
		s.trackToolCall("larder_meal_history", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to query meals: %v", err)), nil
	}

	data, err := json.Marshal(meals)
	if err != nil {
		s.trackToolCall("larder_meal_history", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackHistoryViewed(len(meals), "mcp")
	}

	s.trackToolCall("larder_meal_history", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleReviewMeals handles the larder_review_meals tool.
func (s *Server) handleReviewMeals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	days := optDays(req.Params.Arguments, "days", defaultReviewDays)

	meals, err := s.db.Unreconciled(days)
	if err != nil {
		s.trackToolCall("larder_review_meals", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to query planned meals: %v", err)), nil
	}

	data, err := json.Marshal(meals)
	if err != nil {
		s.trackToolCall("larder_review_meals", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	s.trackToolCall("larder_review_meals", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleMealSuggestions handles the larder_meal_suggestions tool.
func (s *Server) handleMealSuggestions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	daysBack := optDays(req.Params.Arguments, "days_back", suggest.DefaultDaysBack)

	suggestions, err := s.suggester.Suggest(daysBack)
	if err != nil {
		s.trackToolCall("larder_meal_suggestions", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute suggestions: %v", err)), nil
	}

	data, err := json.Marshal(suggestions)
	if err != nil {
		s.trackToolCall("larder_meal_suggestions", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal suggestions: %v", err)), nil
	}

	if s.telemetry != nil {
		s.telemetry.TrackSuggestionsComputed(daysBack, len(suggestions.NoveltyCandidates), len(suggestions.FrequentAdhocMeals))
	}

	s.trackToolCall("larder_meal_suggestions", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleScheduledMeals handles the larder_scheduled_meals tool.
func (s *Server) handleScheduledMeals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	days := optDays(req.Params.Arguments, "days", defaultAgendaDays)
	pastDays := 0
	if v, ok := req.Params.Arguments["past_days"].(float64); ok && v > 0 {
		pastDays = int(v)
	}

	events, err := s.calendar.ListEvents(ctx, days, pastDays)
	if err != nil {
		s.trackToolCall("larder_scheduled_meals", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to read calendar: %v", err)), nil
	}

	data, err := json.Marshal(events)
	if err != nil {
		s.trackToolCall("larder_scheduled_meals", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal events: %v", err)), nil
	}

	s.trackToolCall("larder_scheduled_meals", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleLedgerStats handles the larder_ledger_stats tool.
func (s *Server) handleLedgerStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	stats, err := s.db.GetStats()
	if err != nil {
		s.trackToolCall("larder_ledger_stats", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		s.trackToolCall("larder_ledger_stats", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal stats: %v", err)), nil
	}

	s.trackToolCall("larder_ledger_stats", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleGroceryAdd handles the larder_grocery_add tool.
func (s *Server) handleGroceryAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	itemsArg, ok := req.Params.Arguments["items"].([]interface{})
	if !ok || len(itemsArg) == 0 {
		s.trackToolCall("larder_grocery_add", start, false)
		return mcp.NewToolResultError("items parameter is required"), nil
	}

	items := make([]string, 0, len(itemsArg))
	for _, it := range itemsArg {
		if v, ok := it.(string); ok && v != "" {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		s.trackToolCall("larder_grocery_add", start, false)
		return mcp.NewToolResultError("items must contain at least one non-empty string"), nil
	}

	result := s.reminders.Add(ctx, items, s.cfg.Reminders.ListName)

	data, _ := json.Marshal(result)

	if s.telemetry != nil && result.Success {
		s.telemetry.TrackGroceryUpdated("add", result.Count)
	}

	s.trackToolCall("larder_grocery_add", start, result.Success)
	return mcp.NewToolResultText(string(data)), nil
}

// handleGroceryClear handles the larder_grocery_clear tool.
func (s *Server) handleGroceryClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	result := s.reminders.Clear(ctx, s.cfg.Reminders.ListName)

	data, _ := json.Marshal(result)

	if s.telemetry != nil && result.Success {
		s.telemetry.TrackGroceryUpdated("clear", result.Removed)
	}

	s.trackToolCall("larder_grocery_clear", start, result.Success)
	return mcp.NewToolResultText(string(data)), nil
}

// handleGroceryList handles the larder_grocery_list tool.
func (s *Server) handleGroceryList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	result := s.reminders.List(ctx, s.cfg.Reminders.ListName)

	data, _ := json.Marshal(result)

	s.trackToolCall("larder_grocery_list", start, result.Success)
	return mcp.NewToolResultText(string(data)), nil
}
