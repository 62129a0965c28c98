package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "larder", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"log", "schedule", "update", "history", "review", "suggest", "recipes", "agenda", "grocery", "stats"} {
		assert.Contains(t, names, want)
	}
}

func TestGroceryCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range groceryCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "add")
	assert.Contains(t, names, "clear")
	assert.Contains(t, names, "list")
}

func TestRecipesCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range recipesCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "search")
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "list")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", errors.New("load config: no home dir"), "config_error"},
		{"ledger", errors.New("open ledger: disk full"), "database_error"},
		{"calendar", errors.New("osascript: calendar not found"), "collaborator_error"},
		{"not found", errors.New("meal not found"), "not_found_error"},
		{"validation", errors.New("date is required"), "validation_error"},
		{"unknown", errors.New("something odd"), "unknown_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}
