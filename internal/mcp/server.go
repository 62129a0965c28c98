// Package mcp provides the Model Context Protocol server for Larder.
//
// This package implements an MCP server that exposes the meal ledger,
// the Mela recipe database, and the Calendar/Reminders bridges to
// MCP-compatible clients. It reuses the internal/db, internal/planner,
// and internal/suggest packages to ensure consistent behavior with the
// CLI.
package mcp

import (
	"context"

	"github.com/larderhq/larder/internal/calendar"
	"github.com/larderhq/larder/internal/config"
	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/planner"
	"github.com/larderhq/larder/internal/recipes"
	"github.com/larderhq/larder/internal/reminders"
	"github.com/larderhq/larder/internal/suggest"
	"github.com/larderhq/larder/internal/telemetry"
	"github.com/larderhq/larder/pkg/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with Larder-specific functionality.
type Server struct {
	db        *db.DB
	cfg       *config.Config
	recipes   *recipes.Store // nil when the Mela database is unavailable
	calendar  *calendar.Client
	reminders *reminders.Client
	planner   *planner.Planner
	suggester *suggest.Engine
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance. recipeStore may be nil;
// recipe tools then report the database as unavailable and scheduled
// meals are recorded without a recipe link.
func NewServer(database *db.DB, cfg *config.Config, recipeStore *recipes.Store, cal *calendar.Client, rem *reminders.Client, tc telemetry.Client) *Server {
	var searcher planner.RecipeSearcher
	if recipeStore != nil {
		searcher = recipeStore
	}

	s := &Server{
		db:        database,
		cfg:       cfg,
		recipes:   recipeStore,
		calendar:  cal,
		reminders: rem,
		planner:   planner.New(database, searcher, cal),
		suggester: suggest.New(database),
		telemetry: tc,
	}

	// Create MCP server with capabilities
	s.server = server.NewMCPServer(
		"larder",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false), // subscribe=false for now
	)

	// Register tools and resources
	s.registerTools()
	s.registerResources()

	return s
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds all Larder tools to the MCP server.
func (s *Server) registerTools() {
	// Recipe tools
	s.server.AddTool(searchRecipesTool(), s.handleSearchRecipes)
	s.server.AddTool(getRecipeTool(), s.handleGetRecipe)
	s.server.AddTool(listRecipesTool(), s.handleListRecipes)

	// Planning tools
	s.server.AddTool(scheduleMealTool(), s.handleScheduleMeal)
	s.server.AddTool(logMealTool(), s.handleLogMeal)
	s.server.AddTool(updateMealTool(), s.handleUpdateMeal)

	// Ledger query tools
	s.server.AddTool(mealHistoryTool(), s.handleMealHistory)
	s.server.AddTool(reviewMealsTool(), s.handleReviewMeals)
	s.server.AddTool(mealSuggestionsTool(), s.handleMealSuggestions)
	s.server.AddTool(scheduledMealsTool(), s.handleScheduledMeals)
	s.server.AddTool(ledgerStatsTool(), s.handleLedgerStats)

	// Grocery tools
	s.server.AddTool(groceryAddTool(), s.handleGroceryAdd)
	s.server.AddTool(groceryClearTool(), s.handleGroceryClear)
	s.server.AddTool(groceryListTool(), s.handleGroceryList)
}

// registerResources adds all Larder resources to the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"larder://meal/{id}",
			"Meal record",
			mcp.WithTemplateDescription("JSON record of a single ledger entry"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		s.handleMealResource,
	)

	s.server.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"larder://recipe/{id}",
			"Recipe content",
			mcp.WithTemplateDescription("Full markdown content of a recipe from the Mela database"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleRecipeResource,
	)
}
