package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle state of a ledger entry.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusCooked  Status = "cooked"
	StatusSkipped Status = "skipped"
)

// Valid reports whether s is one of the three persistable statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusCooked, StatusSkipped:
		return true
	}
	return false
}

// TagSet is an ordered set of free-text labels attached to a meal.
// The persisted encoding is a comma-joined string; joining and splitting
// happen only at the storage boundary via Value/Scan.
type TagSet []string

// ParseTags splits a comma-separated tag string into a TagSet,
// trimming whitespace and dropping empty tokens.
func ParseTags(s string) TagSet {
	if s == "" {
		return nil
	}
	var tags TagSet
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}

// String returns the persisted comma-joined encoding.
func (t TagSet) String() string {
	return strings.Join(t, ",")
}

// Value implements driver.Valuer. An empty set is stored as NULL so that
// untagged meals are excluded from tag scans.
func (t TagSet) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TagSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = nil
	case string:
		*t = ParseTags(v)
	case []byte:
		*t = ParseTags(string(v))
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}
	return nil
}

// Meal is one planned, cooked, or skipped occurrence in the meal ledger.
// The store assigns ID and both timestamps; callers never set them.
type Meal struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string    `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Title     string    `gorm:"not null" json:"title"`
	RecipeID  *int64    `gorm:"index" json:"recipe_id"`
	Tags      TagSet    `gorm:"type:text" json:"tags,omitempty"`
	Status    Status    `gorm:"type:text;not null" json:"status"`
	Portions  *int      `json:"portions,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Meal) TableName() string {
	return "meals"
}

// IsAdHoc reports whether the meal has no linked recipe.
func (m *Meal) IsAdHoc() bool {
	return m.RecipeID == nil
}

// IdentityKey is the grouping key for a meal: the recipe ID when linked,
// the title otherwise. Two unlinked records with the same title are the
// same dish for grouping purposes.
func (m *Meal) IdentityKey() string {
	if m.RecipeID != nil {
		return fmt.Sprintf("recipe:%d", *m.RecipeID)
	}
	return "title:" + m.Title
}

// MealPatch carries the optional fields accepted by a partial update.
// Nil fields are left unchanged; the store only ever reads the fields
// declared here.
type MealPatch struct {
	Date     *string
	Title    *string
	RecipeID *int64
	Tags     *TagSet
	Status   *Status
	Portions *int
	Notes    *string
}

// IsZero reports whether the patch carries no applicable fields.
func (p MealPatch) IsZero() bool {
	return p.Date == nil && p.Title == nil && p.RecipeID == nil &&
		p.Tags == nil && p.Status == nil && p.Portions == nil && p.Notes == nil
}

// StaleMeal is a meal identity cooked within the analysis window whose
// most recent occurrence is older than the staleness threshold.
type StaleMeal struct {
	Title       string `gorm:"column:title" json:"title"`
	RecipeID    *int64 `gorm:"column:recipe_id" json:"recipe_id"`
	LastDate    string `gorm:"column:last_date" json:"last_date"`
	TimesCooked int    `gorm:"column:times_cooked" json:"times_cooked"`
}

// AdhocMeal is an unlinked meal cooked often enough to suggest again.
type AdhocMeal struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// Suggestions is the recommendation payload derived from ledger history.
type Suggestions struct {
	NoveltyCandidates    []StaleMeal    `json:"novelty_candidates"`
	TagFrequency         map[string]int `json:"tag_frequency"`
	OverRepresentedTags  map[string]int `json:"over_represented_tags"`
	UnderRepresentedTags map[string]int `json:"under_represented_tags"`
	FrequentAdhocMeals   []AdhocMeal    `json:"frequent_adhoc_meals"`
}

// LedgerStats holds aggregate statistics about the meal ledger.
type LedgerStats struct {
	TotalMeals    int64     `json:"total_meals"`
	PlannedMeals  int64     `json:"planned_meals"`
	CookedMeals   int64     `json:"cooked_meals"`
	SkippedMeals  int64     `json:"skipped_meals"`
	LedgerBytes   int64     `json:"ledger_bytes"`
	LastUpdated   time.Time `json:"last_updated"`
}

// AppState stores per-installation state such as the anonymous telemetry
// tracking ID. A single row with ID "default" exists per ledger.
type AppState struct {
	ID         string    `gorm:"primaryKey;size:32" json:"id"`
	TrackingID string    `gorm:"size:64" json:"tracking_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (AppState) TableName() string {
	return "app_state"
}
