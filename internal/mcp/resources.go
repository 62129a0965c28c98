package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/recipes"
	"github.com/mark3labs/mcp-go/mcp"
)

// resourcePrefix is the URI scheme for Larder resources.
const resourcePrefix = "larder://"

// parseResourceID extracts the numeric id from a larder://{kind}/{id} URI.
func parseResourceID(uri, kind string) (int64, error) {
	prefix := resourcePrefix + kind + "/"
	if !strings.HasPrefix(uri, prefix) {
		return 0, fmt.Errorf("invalid URI scheme: %s", uri)
	}

	raw := strings.TrimPrefix(uri, prefix)
	if raw == "" {
		return 0, fmt.Errorf("empty id in URI: %s", uri)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q in URI: %s", raw, uri)
	}
	return id, nil
}

// handleMealResource handles larder://meal/{id} resources.
func (s *Server) handleMealResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := parseResourceID(req.Params.URI, "meal")
	if err != nil {
		return nil, err
	}

	meal, err := s.db.GetMeal(id)
	if err != nil {
		if errors.Is(err, db.ErrMealNotFound) {
			return nil, fmt.Errorf("meal not found: %d", id)
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}

	data, err := json.Marshal(meal)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal meal: %v", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// handleRecipeResource handles larder://recipe/{id} resources.
func (s *Server) handleRecipeResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id, err := parseResourceID(req.Params.URI, "recipe")
	if err != nil {
		return nil, err
	}

	if s.recipes == nil {
		return nil, fmt.Errorf("recipe database not available")
	}

	recipe, err := s.recipes.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe not found: %d", id)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     recipes.Markdown(recipe),
		},
	}, nil
}
