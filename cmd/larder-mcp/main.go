// Package main provides the larder-mcp server.
//
// larder-mcp exposes the meal ledger, the Mela recipe database, and the
// Calendar/Reminders bridges via the Model Context Protocol, so an AI
// assistant can plan and log meals on the user's behalf.
//
// Usage:
//
//	larder-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
// Configure in your MCP client via ~/.claude.json or .mcp.json.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/larderhq/larder/internal/applescript"
	"github.com/larderhq/larder/internal/calendar"
	"github.com/larderhq/larder/internal/config"
	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/log"
	"github.com/larderhq/larder/internal/mcp"
	"github.com/larderhq/larder/internal/recipes"
	"github.com/larderhq/larder/internal/reminders"
	"github.com/larderhq/larder/internal/telemetry"
	"github.com/larderhq/larder/pkg/version"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("larder-mcp %s\n", version.Version)
		os.Exit(0)
	}

	// Handle --help flag
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	// Setup context with cancellation on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)

	// stdout carries the JSON-RPC stream, so logs go to file only.
	if err := log.InitFileOnly(paths.Logs); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Close() }()

	database, err := db.New(db.DefaultConfig(paths.Ledger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open ledger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	// The recipe database is optional; recipe tools degrade when Mela
	// isn't installed.
	recipeStore, err := recipes.Open(paths.RecipeDB)
	if err != nil && !errors.Is(err, recipes.ErrDatabaseMissing) {
		fmt.Fprintf(os.Stderr, "Failed to open recipe database: %v\n", err)
		os.Exit(1)
	}
	if recipeStore != nil {
		defer func() { _ = recipeStore.Close() }()
	}

	cal := calendar.New(applescript.OSARunner{Timeout: cfg.Calendar.Timeout}, cfg.Calendar.Name)
	rem := reminders.New(applescript.OSARunner{Timeout: cfg.Reminders.Timeout})

	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	started := time.Now()
	telemetryClient.TrackAppStarted("mcp")
	defer func() {
		telemetryClient.TrackAppExited("mcp", time.Since(started).Milliseconds())
	}()

	server := mcp.NewServer(database, cfg, recipeStore, cal, rem, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		log.Errorf("server error: %v", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `larder-mcp - MCP server for the Larder meal planner

USAGE:
    larder-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    larder-mcp is a Model Context Protocol (MCP) server that exposes the
    meal ledger, the Mela recipe database, and the Calendar/Reminders
    bridges to MCP-compatible clients.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).

CONFIGURATION:
    Add to ~/.claude.json for user-level access:

    {
      "mcpServers": {
        "larder": {
          "type": "stdio",
          "command": "larder-mcp"
        }
      }
    }

    Or add to .mcp.json in your project root for project-level access.

    Environment:
      LARDER_HOME                 Data directory (default ~/.larder)
      LARDER_MEAL_LOG_PATH        Ledger database path
      LARDER_RECIPE_DB_PATH       Mela database path
      LARDER_CALENDAR_NAME        Calendar for meal events (default Family)
      LARDER_GROCERY_LIST         Reminders list for groceries (default Grocery)

TOOLS PROVIDED:
    larder_search_recipes    Search recipes by title or ingredient
    larder_get_recipe        Get full recipe details
    larder_list_recipes      List recipes (all / favorites / want_to_cook)
    larder_schedule_meal     Create a calendar event and a planned ledger entry
    larder_log_meal          Record a cooked meal
    larder_update_meal       Update a ledger entry (reconcile planned meals)
    larder_meal_history      Query the ledger with filters
    larder_review_meals      Planned meals awaiting reconciliation
    larder_meal_suggestions  Suggestions from meal history
    larder_scheduled_meals   Upcoming events from the calendar
    larder_grocery_add       Add grocery items to Reminders
    larder_grocery_clear     Clear the grocery list
    larder_grocery_list      Show the grocery list
    larder_ledger_stats      Ledger statistics

RESOURCES PROVIDED:
    larder://meal/{id}      Ledger entry as JSON
    larder://recipe/{id}    Recipe as markdown

MORE INFO:
    https://github.com/larderhq/larder
`
	fmt.Print(help)
}
