package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/larderhq/larder/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceID(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		kind    string
		wantID  int64
		wantErr bool
	}{
		{"meal uri", "larder://meal/42", "meal", 42, false},
		{"recipe uri", "larder://recipe/7", "recipe", 7, false},
		{"wrong kind", "larder://meal/42", "recipe", 0, true},
		{"empty id", "larder://meal/", "meal", 0, true},
		{"non-numeric id", "larder://meal/abc", "meal", 0, true},
		{"wrong scheme", "other://meal/1", "meal", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseResourceID(tt.uri, tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestHandleMealResource(t *testing.T) {
	server := setupTestServer(t, &fakeRunner{}, &fakeRunner{})
	ctx := context.Background()

	meal := &models.Meal{Date: "2026-01-05", Title: "Ramen", Tags: models.TagSet{"quick"}}
	require.NoError(t, server.db.CreateMeal(meal))

	t.Run("returns meal JSON", func(t *testing.T) {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = "larder://meal/1"

		contents, err := server.handleMealResource(ctx, req)
		require.NoError(t, err)
		require.Len(t, contents, 1)

		tc, ok := contents[0].(mcp.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, "application/json", tc.MIMEType)

		var got models.Meal
		require.NoError(t, json.Unmarshal([]byte(tc.Text), &got))
		assert.Equal(t, "Ramen", got.Title)
		assert.Equal(t, models.TagSet{"quick"}, got.Tags)
	})

	t.Run("unknown meal errors", func(t *testing.T) {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = "larder://meal/999"

		_, err := server.handleMealResource(ctx, req)
		assert.Error(t, err)
	})
}

func TestHandleRecipeResource(t *testing.T) {
	server := setupTestServer(t, &fakeRunner{}, &fakeRunner{})
	ctx := context.Background()

	t.Run("returns markdown", func(t *testing.T) {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = "larder://recipe/1"

		contents, err := server.handleRecipeResource(ctx, req)
		require.NoError(t, err)
		require.Len(t, contents, 1)

		tc, ok := contents[0].(mcp.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, "text/markdown", tc.MIMEType)
		assert.Contains(t, tc.Text, "# Fish Tacos")
		assert.Contains(t, tc.Text, "## Ingredients")
	})

	t.Run("unknown recipe errors", func(t *testing.T) {
		req := mcp.ReadResourceRequest{}
		req.Params.URI = "larder://recipe/999"

		_, err := server.handleRecipeResource(ctx, req)
		assert.Error(t, err)
	})
}
