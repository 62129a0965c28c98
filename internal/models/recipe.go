package models

// RecipeSummary is the lightweight row returned by recipe search.
type RecipeSummary struct {
	ID        int64   `gorm:"column:id" json:"id"`
	Title     string  `gorm:"column:title" json:"title"`
	PrepTime  *string `gorm:"column:prep_time" json:"prep_time"`
	CookTime  *string `gorm:"column:cook_time" json:"cook_time"`
	TotalTime *string `gorm:"column:total_time" json:"total_time"`
}

// Recipe is the full detail record for a single recipe.
type Recipe struct {
	ID           int64   `gorm:"column:id" json:"id"`
	Title        string  `gorm:"column:title" json:"title"`
	Ingredients  string  `gorm:"column:ingredients" json:"ingredients"`
	Instructions string  `gorm:"column:instructions" json:"instructions"`
	Notes        string  `gorm:"column:notes" json:"notes"`
	Nutrition    string  `gorm:"column:nutrition" json:"nutrition"`
	Yield        string  `gorm:"column:yield" json:"yield"`
	PrepTime     *string `gorm:"column:prep_time" json:"prep_time"`
	CookTime     *string `gorm:"column:cook_time" json:"cook_time"`
	TotalTime    *string `gorm:"column:total_time" json:"total_time"`
	Favorite     bool    `gorm:"column:favorite" json:"favorite"`
	WantToCook   bool    `gorm:"column:want_to_cook" json:"want_to_cook"`
	Link         string  `gorm:"column:link" json:"link"`
}

// RecipeListing is the row returned by recipe listing.
type RecipeListing struct {
	ID         int64  `gorm:"column:id" json:"id"`
	Title      string `gorm:"column:title" json:"title"`
	Favorite   bool   `gorm:"column:favorite" json:"favorite"`
	WantToCook bool   `gorm:"column:want_to_cook" json:"want_to_cook"`
}
