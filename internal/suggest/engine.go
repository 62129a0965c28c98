// Package suggest derives meal suggestions from ledger history.
package suggest

import (
	"fmt"
	"sort"
	"time"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/models"
)

const (
	// DefaultDaysBack is the default analysis window.
	DefaultDaysBack = 90

	// noveltyGap is the quiet period after which a dish becomes a
	// novelty candidate.
	noveltyGap = 30

	// adhocThreshold is how many times an unlinked meal must have been
	// cooked before it is reported as a frequent ad-hoc meal.
	adhocThreshold = 3

	// Tags are over-represented above 1.5x the mean count and
	// under-represented below 0.5x.
	overFactor  = 1.5
	underFactor = 0.5
)

// Engine composes ledger queries into a recommendation payload. It holds
// no state of its own; output is a pure function of ledger contents and
// the current date.
type Engine struct {
	db *db.DB
}

// New creates a suggestion engine over the given ledger.
func New(database *db.DB) *Engine {
	return &Engine{db: database}
}

// Suggest analyzes the last daysBack days of history. Non-positive
// daysBack falls back to DefaultDaysBack.
func (e *Engine) Suggest(daysBack int) (*models.Suggestions, error) {
	if daysBack <= 0 {
		daysBack = DefaultDaysBack
	}

	tagFreq, err := e.db.TagFrequency(daysBack)
	if err != nil {
		return nil, fmt.Errorf("tag frequency: %w", err)
	}

	stale, err := e.db.StaleMeals(daysBack, noveltyGap)
	if err != nil {
		return nil, fmt.Errorf("novelty candidates: %w", err)
	}

	frequent, err := e.frequentAdhocMeals(daysBack)
	if err != nil {
		return nil, err
	}

	over, under := splitByRepresentation(tagFreq)

	return &models.Suggestions{
		NoveltyCandidates:    stale,
		TagFrequency:         tagFreq,
		OverRepresentedTags:  over,
		UnderRepresentedTags: under,
		FrequentAdhocMeals:   frequent,
	}, nil
}

// frequentAdhocMeals counts cooked, unlinked meals per title within the
// window and keeps those at or above the threshold, most frequent first
// with title order as the stable tiebreak.
func (e *Engine) frequentAdhocMeals(daysBack int) ([]models.AdhocMeal, error) {
	startDate := time.Now().AddDate(0, 0, -daysBack).Format(db.DateFormat)
	meals, err := e.db.FindMeals(db.MealFilter{StartDate: startDate})
	if err != nil {
		return nil, fmt.Errorf("adhoc meals: %w", err)
	}

	counts := make(map[string]int)
	for _, m := range meals {
		if m.IsAdHoc() && m.Status == models.StatusCooked {
			counts[m.Title]++
		}
	}

	var frequent []models.AdhocMeal
	for title, count := range counts {
		if count >= adhocThreshold {
			frequent = append(frequent, models.AdhocMeal{Title: title, Count: count})
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].Count != frequent[j].Count {
			return frequent[i].Count > frequent[j].Count
		}
		return frequent[i].Title < frequent[j].Title
	})
	return frequent, nil
}

// splitByRepresentation classifies tags against the mean count. An empty
// frequency map yields empty results rather than a division attempt.
func splitByRepresentation(freq map[string]int) (over, under map[string]int) {
	over = make(map[string]int)
	under = make(map[string]int)
	if len(freq) == 0 {
		return over, under
	}

	sum := 0
	for _, count := range freq {
		sum += count
	}
	avg := float64(sum) / float64(len(freq))

	for tag, count := range freq {
		if float64(count) > avg*overFactor {
			over[tag] = count
		}
		if float64(count) < avg*underFactor {
			under[tag] = count
		}
	}
	return over, under
}
