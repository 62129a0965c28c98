package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/larderhq/larder/internal/models"
)

// DateFormat is the fixed-width ISO encoding of ledger dates. Lexicographic
// comparison of encoded dates matches chronological order.
const DateFormat = "2006-01-02"

// CreateMeal validates and appends a ledger record. Status defaults to
// "cooked" when the caller leaves it empty. The store assigns ID and both
// timestamps from a single clock read.
func (db *DB) CreateMeal(meal *models.Meal) error {
	if meal.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if meal.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := time.Parse(DateFormat, meal.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, meal.Date)
	}
	if meal.Status == "" {
		meal.Status = models.StatusCooked
	}
	if !meal.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, meal.Status)
	}
	if meal.Portions != nil && *meal.Portions <= 0 {
		return fmt.Errorf("%w: portions must be positive", ErrValidation)
	}

	now := time.Now()
	meal.ID = 0
	meal.CreatedAt = now
	meal.UpdatedAt = now

	if err := db.Create(meal).Error; err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// GetMeal retrieves a ledger record by id.
func (db *DB) GetMeal(id int64) (*models.Meal, error) {
	var meal models.Meal
	err := db.First(&meal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrMealNotFound, id)
		}
		return nil, fmt.Errorf("get meal %d: %w", id, err)
	}
	return &meal, nil
}

// UpdateMeal applies the non-nil fields of patch to an existing record and
// refreshes updated_at. An empty patch is a no-op that returns the current
// record with untouched timestamps. Returns ErrMealNotFound when id does
// not exist, on both paths.
func (db *DB) UpdateMeal(id int64, patch models.MealPatch) (*models.Meal, error) {
	meal, err := db.GetMeal(id)
	if err != nil {
		return nil, err
	}
	if patch.IsZero() {
		return meal, nil
	}

	updates := map[string]interface{}{}
	if patch.Date != nil {
		if _, err := time.Parse(DateFormat, *patch.Date); err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrValidation, *patch.Date)
		}
		updates["date"] = *patch.Date
	}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		updates["title"] = *patch.Title
	}
	if patch.RecipeID != nil {
		updates["recipe_id"] = *patch.RecipeID
	}
	if patch.Tags != nil {
		updates["tags"] = *patch.Tags
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Portions != nil {
		if *patch.Portions <= 0 {
			return nil, fmt.Errorf("%w: portions must be positive", ErrValidation)
		}
		updates["portions"] = *patch.Portions
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}

	updates["updated_at"] = time.Now()

	if err := db.Model(&models.Meal{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update meal %d: %w", id, err)
	}

	return db.GetMeal(id)
}

// MealFilter narrows FindMeals results. All fields are optional.
type MealFilter struct {
	// StartDate and EndDate are inclusive YYYY-MM-DD bounds.
	StartDate string
	EndDate   string
	// Status is an exact match when set.
	Status models.Status
	// Tags holds comma-separated substring tokens. Each token narrows the
	// result set independently, so the filter is an AND of substring
	// matches against the stored tag string, not an any-of. This matches
	// the ledger's historical filter-chaining behavior.
	Tags string
}

// FindMeals returns ledger records matching the filter, ordered by date
// descending with store-assigned id ascending as the stable tiebreak.
func (db *DB) FindMeals(filter MealFilter) ([]models.Meal, error) {
	query := db.Model(&models.Meal{})

	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tags != "" {
		for _, tok := range strings.Split(filter.Tags, ",") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				query = query.Where("tags LIKE ?", "%"+tok+"%")
			}
		}
	}

	var meals []models.Meal
	if err := query.Order("date DESC, id ASC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("find meals: %w", err)
	}
	return meals, nil
}

// Unreconciled returns planned meals dated within the last days days,
// inclusive of today, ordered by date ascending. These are records whose
// outcome (cooked or skipped) has not been recorded yet.
func (db *DB) Unreconciled(days int) ([]models.Meal, error) {
	now := time.Now()
	cutoff := now.AddDate(0, 0, -days).Format(DateFormat)
	today := now.Format(DateFormat)

	var meals []models.Meal
	err := db.Where("status = ? AND date >= ? AND date <= ?", models.StatusPlanned, cutoff, today).
		Order("date ASC, id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("unreconciled meals: %w", err)
	}
	return meals, nil
}

// TagFrequency returns per-tag occurrence counts over tagged records dated
// within the last days days. A record contributes once per tag it carries.
func (db *DB) TagFrequency(days int) (map[string]int, error) {
	cutoff := time.Now().AddDate(0, 0, -days).Format(DateFormat)

	var rows []models.Meal
	err := db.Select("tags").
		Where("tags IS NOT NULL AND date >= ?", cutoff).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("tag frequency: %w", err)
	}

	freq := make(map[string]int)
	for _, row := range rows {
		for _, tag := range row.Tags {
			freq[tag]++
		}
	}
	return freq, nil
}

// StaleMeals returns meal identities that appeared within the last days
// days but not within the last minGap days, ordered oldest first. Identity
// is the recipe id when linked, the title otherwise.
func (db *DB) StaleMeals(days, minGap int) ([]models.StaleMeal, error) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -days).Format(DateFormat)
	staleCutoff := now.AddDate(0, 0, -minGap).Format(DateFormat)

	var stale []models.StaleMeal
	err := db.Raw(`
		SELECT title, recipe_id, MAX(date) AS last_date, COUNT(*) AS times_cooked
		FROM meals
		WHERE date >= ? AND status IN (?, ?)
		GROUP BY COALESCE(recipe_id, title)
		HAVING MAX(date) < ?
		ORDER BY last_date ASC`,
		windowStart, models.StatusCooked, models.StatusPlanned, staleCutoff,
	).Scan(&stale).Error
	if err != nil {
		return nil, fmt.Errorf("stale meals: %w", err)
	}
	return stale, nil
}
