// Package reminders manages the grocery list in Reminders.app.
package reminders

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/larderhq/larder/internal/applescript"
)

// itemSep separates reminder names in script output.
const itemSep = "|||"

// Client talks to Reminders.app.
type Client struct {
	runner applescript.Runner
}

// New creates a reminders client.
func New(runner applescript.Runner) *Client {
	return &Client{runner: runner}
}

// AddResult reports the outcome of adding items to a list.
type AddResult struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	List    string `json:"list"`
	Error   string `json:"error,omitempty"`
}

// ClearResult reports the outcome of clearing a list.
type ClearResult struct {
	Success bool   `json:"success"`
	Removed int    `json:"removed"`
	List    string `json:"list"`
	Error   string `json:"error,omitempty"`
}

// ListResult reports the incomplete items on a list.
type ListResult struct {
	Success bool     `json:"success"`
	Items   []string `json:"items"`
	List    string   `json:"list"`
	Error   string   `json:"error,omitempty"`
}

// Add appends items as reminders on the named list, creating the list if
// it doesn't exist.
func (c *Client) Add(ctx context.Context, items []string, listName string) AddResult {
	if len(items) == 0 {
		return AddResult{Success: true, Count: 0, List: listName}
	}

	if _, err := c.runner.Run(ctx, buildAddScript(items, listName)); err != nil {
		return AddResult{Success: false, List: listName, Error: err.Error()}
	}
	return AddResult{Success: true, Count: len(items), List: listName}
}

// buildAddScript assembles the AppleScript that creates one reminder per item.
func buildAddScript(items []string, listName string) string {
	var lines strings.Builder
	for _, item := range items {
		fmt.Fprintf(&lines,
			"        make new reminder at end of reminders of targetList with properties {name:\"%s\"}\n",
			applescript.Escape(item))
	}

	return fmt.Sprintf(`
	tell application "Reminders"
		try
			set targetList to list "%s"
		on error
			set targetList to make new list with properties {name:"%s"}
		end try
%s	end tell
	return "success"`,
		applescript.Escape(listName), applescript.Escape(listName), lines.String())
}

// Clear deletes all incomplete reminders from the named list and reports
// how many were removed. A missing list clears zero items.
func (c *Client) Clear(ctx context.Context, listName string) ClearResult {
	script := fmt.Sprintf(`
	tell application "Reminders"
		try
			set targetList to list "%s"
		on error
			return "0"
		end try
		set incompleteItems to (every reminder of targetList whose completed is false)
		set itemCount to count of incompleteItems
		repeat with r in incompleteItems
			delete r
		end repeat
		return itemCount as string
	end tell`,
		applescript.Escape(listName))

	output, err := c.runner.Run(ctx, script)
	if err != nil {
		return ClearResult{Success: false, List: listName, Error: err.Error()}
	}

	removed := 0
	if output != "" {
		if n, err := strconv.Atoi(output); err == nil {
			removed = n
		}
	}
	return ClearResult{Success: true, Removed: removed, List: listName}
}

// List returns the names of all incomplete reminders on the named list.
func (c *Client) List(ctx context.Context, listName string) ListResult {
	script := fmt.Sprintf(`
	tell application "Reminders"
		try
			set targetList to list "%s"
		on error
			return ""
		end try
		set output to ""
		set incompleteItems to (every reminder of targetList whose completed is false)
		repeat with r in incompleteItems
			set output to output & name of r & "%s"
		end repeat
		return output
	end tell`,
		applescript.Escape(listName), itemSep)

	output, err := c.runner.Run(ctx, script)
	if err != nil {
		return ListResult{Success: false, List: listName, Items: []string{}, Error: err.Error()}
	}

	var items []string
	for _, item := range strings.Split(output, itemSep) {
		if item != "" {
			items = append(items, item)
		}
	}
	return ListResult{Success: true, Items: items, List: listName}
}
