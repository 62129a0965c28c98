package recipes

import (
	"fmt"
	"strings"

	"github.com/larderhq/larder/internal/models"
)

// Markdown renders a recipe as a markdown document. Sections with no
// content are omitted.
func Markdown(r *models.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", r.Title)

	var meta []string
	if r.PrepTime != nil && *r.PrepTime != "" {
		meta = append(meta, "Prep: "+*r.PrepTime)
	}
	if r.CookTime != nil && *r.CookTime != "" {
		meta = append(meta, "Cook: "+*r.CookTime)
	}
	if r.TotalTime != nil && *r.TotalTime != "" {
		meta = append(meta, "Total: "+*r.TotalTime)
	}
	if r.Yield != "" {
		meta = append(meta, "Yield: "+r.Yield)
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(meta, " | "))
	}

	if r.Ingredients != "" {
		fmt.Fprintf(&b, "\n## Ingredients\n\n%s\n", r.Ingredients)
	}
	if r.Instructions != "" {
		fmt.Fprintf(&b, "\n## Instructions\n\n%s\n", r.Instructions)
	}
	if r.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", r.Notes)
	}
	if r.Nutrition != "" {
		fmt.Fprintf(&b, "\n## Nutrition\n\n%s\n", r.Nutrition)
	}
	if r.Link != "" {
		fmt.Fprintf(&b, "\nSource: %s\n", r.Link)
	}

	return b.String()
}
