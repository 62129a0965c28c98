package telemetry

import (
	"runtime"

	"github.com/larderhq/larder/pkg/version"
)

// Event names - CLI & MCP
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCLIHelpViewed      = "cli_help_viewed"
	EventMCPToolCalled      = "mcp_tool_called"
)

// Event names - domain
const (
	EventMealLogged          = "meal_logged"
	EventMealScheduled       = "meal_scheduled"
	EventMealUpdated         = "meal_updated"
	EventHistoryViewed       = "history_viewed"
	EventSuggestionsComputed = "suggestions_computed"
	EventRecipeSearched      = "recipe_searched"
	EventGroceryUpdated      = "grocery_updated"
)

// baseProperties returns properties attached to every event. Only build
// and platform metadata is included; no meal titles, tags, or other user
// content ever leaves the machine.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"app_version": version.Version,
		"dev_build":   version.IsDevBuild(),
		"os":          runtime.GOOS,
		"arch":        runtime.GOARCH,
	}
}

// merge combines base properties with event-specific ones.
func merge(props map[string]interface{}) map[string]interface{} {
	out := baseProperties()
	for k, v := range props {
		out[k] = v
	}
	return out
}

func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	c.Track(EventCLICommandExecuted, merge(map[string]interface{}{
		"command_name": commandName,
		"has_flags":    hasFlags,
		"duration_ms":  durationMs,
	}))
}

func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	c.Track(EventCLIErrorOccurred, merge(map[string]interface{}{
		"command_name": commandName,
		"error_type":   errorType,
	}))
}

func (c *posthogClient) TrackCLIHelpViewed(commandName string, cliArgs []string) {
	c.Track(EventCLIHelpViewed, merge(map[string]interface{}{
		"command_name": commandName,
		"arg_count":    len(cliArgs),
	}))
}

func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	c.Track(EventMCPToolCalled, merge(map[string]interface{}{
		"tool_name":   toolName,
		"duration_ms": durationMs,
		"success":     success,
	}))
}

func (c *posthogClient) TrackMealLogged(hasRecipe bool, tagCount int, surface string) {
	c.Track(EventMealLogged, merge(map[string]interface{}{
		"has_recipe": hasRecipe,
		"tag_count":  tagCount,
		"surface":    surface,
	}))
}

func (c *posthogClient) TrackMealScheduled(resolved, success bool) {
	c.Track(EventMealScheduled, merge(map[string]interface{}{
		"recipe_resolved": resolved,
		"success":         success,
	}))
}

func (c *posthogClient) TrackMealUpdated(fieldCount int) {
	c.Track(EventMealUpdated, merge(map[string]interface{}{
		"field_count": fieldCount,
	}))
}

func (c *posthogClient) TrackHistoryViewed(resultCount int, surface string) {
	c.Track(EventHistoryViewed, merge(map[string]interface{}{
		"result_count": resultCount,
		"surface":      surface,
	}))
}

func (c *posthogClient) TrackSuggestionsComputed(daysBack, noveltyCount, adhocCount int) {
	c.Track(EventSuggestionsComputed, merge(map[string]interface{}{
		"days_back":     daysBack,
		"novelty_count": noveltyCount,
		"adhoc_count":   adhocCount,
	}))
}

func (c *posthogClient) TrackRecipeSearched(resultCount int, surface string) {
	c.Track(EventRecipeSearched, merge(map[string]interface{}{
		"result_count": resultCount,
		"surface":      surface,
	}))
}

func (c *posthogClient) TrackGroceryUpdated(action string, itemCount int) {
	c.Track(EventGroceryUpdated, merge(map[string]interface{}{
		"action":     action,
		"item_count": itemCount,
	}))
}

func (c *posthogClient) TrackAppStarted(mode string) {
	c.Track(EventAppStarted, merge(map[string]interface{}{
		"mode": mode,
	}))
}

func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	c.Track(EventAppExited, merge(map[string]interface{}{
		"mode":        mode,
		"duration_ms": sessionDurationMs,
	}))
}

// noop implementations

func (c *noopClient) TrackCLICommandExecuted(string, bool, int64) {}
func (c *noopClient) TrackCLIError(string, string)                {}
func (c *noopClient) TrackCLIHelpViewed(string, []string)         {}
func (c *noopClient) TrackMCPToolCalled(string, int64, bool)      {}
func (c *noopClient) TrackMealLogged(bool, int, string)           {}
func (c *noopClient) TrackMealScheduled(bool, bool)               {}
func (c *noopClient) TrackMealUpdated(int)                        {}
func (c *noopClient) TrackHistoryViewed(int, string)              {}
func (c *noopClient) TrackSuggestionsComputed(int, int, int)      {}
func (c *noopClient) TrackRecipeSearched(int, string)             {}
func (c *noopClient) TrackGroceryUpdated(string, int)             {}
func (c *noopClient) TrackAppStarted(string)                      {}
func (c *noopClient) TrackAppExited(string, int64)                {}
