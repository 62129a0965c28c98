package cli

import (
	"fmt"
	"sort"

	"github.com/larderhq/larder/internal/suggest"
	"github.com/spf13/cobra"
)

var suggestDaysBack int

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest meals from your own history",
	Long: `Analyze recent meal history for suggestions.

Reports dishes you haven't cooked in a while, tags that are over- or
under-represented, and ad-hoc meals cooked often enough to deserve a
place in the rotation.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&suggestDaysBack, "days", suggest.DefaultDaysBack, "analysis window in days")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	_, database, err := openLedger()
	if err != nil {
		return trackCLIError("suggest", err)
	}
	defer func() { _ = database.Close() }()

	engine := suggest.New(database)
	suggestions, err := engine.Suggest(suggestDaysBack)
	if err != nil {
		return trackCLIError("suggest", fmt.Errorf("compute suggestions: %w", err))
	}

	telemetryClient.TrackSuggestionsComputed(suggestDaysBack, len(suggestions.NoveltyCandidates), len(suggestions.FrequentAdhocMeals))

	fmt.Printf("SUGGESTIONS (last %d days)\n\n", suggestDaysBack)

	if len(suggestions.NoveltyCandidates) > 0 {
		fmt.Println("Haven't cooked in a while:")
		for _, sm := range suggestions.NoveltyCandidates {
			fmt.Printf("  %s (last cooked %s, %dx in window)\n", sm.Title, sm.LastDate, sm.TimesCooked)
		}
		fmt.Println()
	}

	if len(suggestions.FrequentAdhocMeals) > 0 {
		fmt.Println("Frequent ad-hoc meals (consider saving a recipe):")
		for _, am := range suggestions.FrequentAdhocMeals {
			fmt.Printf("  %s (%dx)\n", am.Title, am.Count)
		}
		fmt.Println()
	}

	if len(suggestions.OverRepresentedTags) > 0 {
		fmt.Printf("Over-represented tags: %s\n", formatTagCounts(suggestions.OverRepresentedTags))
	}
	if len(suggestions.UnderRepresentedTags) > 0 {
		fmt.Printf("Under-represented tags: %s\n", formatTagCounts(suggestions.UnderRepresentedTags))
	}

	if len(suggestions.NoveltyCandidates) == 0 &&
		len(suggestions.FrequentAdhocMeals) == 0 &&
		len(suggestions.OverRepresentedTags) == 0 &&
		len(suggestions.UnderRepresentedTags) == 0 {
		fmt.Println("Not enough history yet. Log some meals first.")
	}

	return nil
}

// formatTagCounts renders a tag frequency map as "tag (n), tag (n)" in
// descending count order.
func formatTagCounts(counts map[string]int) string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})

	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s (%d)", tag, counts[tag])
	}
	return out
}
