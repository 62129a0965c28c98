// Package planner orchestrates meal scheduling and logging across the
// ledger, the recipe store, and the calendar.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/larderhq/larder/internal/calendar"
	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/models"
)

// RecipeSearcher resolves recipe names against the recipe database.
type RecipeSearcher interface {
	Search(query string) ([]models.RecipeSummary, error)
}

// EventScheduler creates calendar events.
type EventScheduler interface {
	ScheduleEvent(ctx context.Context, title, date, timeOfDay string) calendar.Result
}

// Planner drives the schedule and log workflows.
type Planner struct {
	db       *db.DB
	recipes  RecipeSearcher
	calendar EventScheduler
}

// New creates a planner. recipes may be nil when the recipe database is
// unavailable; scheduled meals are then recorded as ad-hoc.
func New(database *db.DB, recipes RecipeSearcher, cal EventScheduler) *Planner {
	return &Planner{db: database, recipes: recipes, calendar: cal}
}

// ScheduleOutcome reports the result of a Schedule call. A calendar
// failure yields Success=false with Error set and no ledger record.
type ScheduleOutcome struct {
	Success  bool   `json:"success"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Calendar string `json:"calendar,omitempty"`
	RecipeID *int64 `json:"recipe_id,omitempty"`
	MealID   int64  `json:"meal_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Schedule resolves recipeName against the recipe store, creates a
// calendar event, and appends a planned ledger record only after the
// calendar reports success. The ledger is never written when the external
// call fails.
func (p *Planner) Schedule(ctx context.Context, recipeName, date, timeOfDay string) (ScheduleOutcome, error) {
	recipeID, err := p.resolveRecipe(recipeName)
	if err != nil {
		return ScheduleOutcome{}, fmt.Errorf("resolve recipe: %w", err)
	}

	result := p.calendar.ScheduleEvent(ctx, recipeName, date, timeOfDay)
	if !result.Success {
		return ScheduleOutcome{
			Success: false,
			Title:   recipeName,
			Date:    date,
			Time:    timeOfDay,
			Error:   result.Error,
		}, nil
	}

	meal := models.Meal{
		Date:     date,
		Title:    recipeName,
		RecipeID: recipeID,
		Status:   models.StatusPlanned,
	}
	if err := p.db.CreateMeal(&meal); err != nil {
		return ScheduleOutcome{}, fmt.Errorf("record planned meal: %w", err)
	}

	return ScheduleOutcome{
		Success:  true,
		Title:    recipeName,
		Date:     date,
		Time:     timeOfDay,
		Calendar: result.Calendar,
		RecipeID: recipeID,
		MealID:   meal.ID,
	}, nil
}

// resolveRecipe returns the id of the first search hit whose title equals
// name case-insensitively. No match, or no recipe store, leaves the meal
// ad-hoc.
func (p *Planner) resolveRecipe(name string) (*int64, error) {
	if p.recipes == nil {
		return nil, nil
	}
	matches, err := p.recipes.Search(name)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if strings.EqualFold(m.Title, name) {
			id := m.ID
			return &id, nil
		}
	}
	return nil, nil
}

// LogArgs carries the fields accepted by Log. Title is required; Date
// defaults to today.
type LogArgs struct {
	Title    string
	Date     string
	Tags     models.TagSet
	RecipeID *int64
	Portions *int
	Notes    string
}

// Log records a cooked meal. It is a pure ledger write with no external
// calls.
func (p *Planner) Log(ctx context.Context, args LogArgs) (*models.Meal, error) {
	date := args.Date
	if date == "" {
		date = time.Now().Format(db.DateFormat)
	}

	meal := models.Meal{
		Date:     date,
		Title:    args.Title,
		RecipeID: args.RecipeID,
		Tags:     args.Tags,
		Status:   models.StatusCooked,
		Portions: args.Portions,
		Notes:    args.Notes,
	}
	if err := p.db.CreateMeal(&meal); err != nil {
		return nil, err
	}
	return &meal, nil
}
