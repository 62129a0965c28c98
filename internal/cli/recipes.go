package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/larderhq/larder/internal/config"
	"github.com/larderhq/larder/internal/recipes"
	"github.com/spf13/cobra"
)

var recipesListFilter string

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse the Mela recipe database",
	Long: `Browse the read-only Mela recipe database.

Larder never writes to this database; Mela remains the source of truth
for recipes.`,
}

var recipesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes by title or ingredient",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesSearch,
}

var recipesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe with rendered instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesShow,
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE:  runRecipesList,
}

func init() {
	recipesListCmd.Flags().StringVar(&recipesListFilter, "filter", "all", "all, favorites, or want_to_cook")

	recipesCmd.AddCommand(recipesSearchCmd)
	recipesCmd.AddCommand(recipesShowCmd)
	recipesCmd.AddCommand(recipesListCmd)
}

// mustRecipeStore opens the Mela database or fails with guidance.
func mustRecipeStore() (*recipes.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := openRecipeStore(cfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("recipe database not found; is Mela installed? (override with LARDER_RECIPE_DB_PATH)")
	}
	return store, nil
}

func runRecipesSearch(cmd *cobra.Command, args []string) error {
	store, err := mustRecipeStore()
	if err != nil {
		return trackCLIError("search", err)
	}
	defer func() { _ = store.Close() }()

	results, err := store.Search(args[0])
	if err != nil {
		return trackCLIError("search", fmt.Errorf("search recipes: %w", err))
	}

	telemetryClient.TrackRecipeSearched(len(results), "cli")

	if len(results) == 0 {
		fmt.Printf("No recipes match %q.\n", args[0])
		return nil
	}

	for _, r := range results {
		line := fmt.Sprintf("#%d  %s", r.ID, r.Title)
		if r.TotalTime != nil && *r.TotalTime != "" {
			line += fmt.Sprintf("  (%s)", *r.TotalTime)
		}
		fmt.Println(line)
	}
	return nil
}

func runRecipesShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return trackCLIError("show", fmt.Errorf("invalid recipe id %q", args[0]))
	}

	store, err := mustRecipeStore()
	if err != nil {
		return trackCLIError("show", err)
	}
	defer func() { _ = store.Close() }()

	recipe, err := store.Get(id)
	if err != nil {
		return trackCLIError("show", fmt.Errorf("get recipe: %w", err))
	}
	if recipe == nil {
		return trackCLIError("show", fmt.Errorf("recipe #%d not found", id))
	}

	markdown := recipes.Markdown(recipe)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fall back to raw markdown when the terminal renderer can't start.
		fmt.Println(markdown)
		return nil
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return nil
	}

	fmt.Print(rendered)
	return nil
}

func runRecipesList(cmd *cobra.Command, args []string) error {
	store, err := mustRecipeStore()
	if err != nil {
		return trackCLIError("list", err)
	}
	defer func() { _ = store.Close() }()

	listings, err := store.List(recipesListFilter)
	if err != nil {
		return trackCLIError("list", fmt.Errorf("list recipes: %w", err))
	}

	if len(listings) == 0 {
		fmt.Println("No recipes found.")
		return nil
	}

	for _, r := range listings {
		markers := ""
		if r.Favorite {
			markers += " ★"
		}
		if r.WantToCook {
			markers += " (want to cook)"
		}
		fmt.Printf("#%d  %s%s\n", r.ID, r.Title, markers)
	}
	return nil
}
