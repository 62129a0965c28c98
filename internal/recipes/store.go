// Package recipes provides read-only access to the Mela recipe database.
//
// Mela is an external recipe manager; its SQLite database (a Core Data
// store) is never written by this application. Columns of the ZRECIPEOBJECT
// table are aliased to friendly names at query time.
package recipes

import (
	"errors"
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/larderhq/larder/internal/models"
)

// ErrDatabaseMissing is returned when the Mela database file does not exist.
var ErrDatabaseMissing = errors.New("recipe database not found")

// Listing filters accepted by List.
const (
	FilterAll        = "all"
	FilterFavorites  = "favorites"
	FilterWantToCook = "want_to_cook"
)

// Store is a read-only view over the Mela recipe database.
type Store struct {
	db   *gorm.DB
	path string
}

// Open connects to the Mela database at path.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w at %s", ErrDatabaseMissing, path)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open recipe database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Search returns recipes whose title or ingredient text contains query,
// case-insensitively, ordered by title.
func (s *Store) Search(query string) ([]models.RecipeSummary, error) {
	pattern := "%" + query + "%"

	var results []models.RecipeSummary
	err := s.db.Raw(`
		SELECT
			Z_PK AS id,
			ZTITLE AS title,
			ZPREPTIME AS prep_time,
			ZCOOKTIME AS cook_time,
			ZTOTALTIME AS total_time
		FROM ZRECIPEOBJECT
		WHERE ZTITLE LIKE ? OR ZINGREDIENTS LIKE ?
		ORDER BY ZTITLE`,
		pattern, pattern,
	).Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return results, nil
}

// Get returns full details for a recipe, or nil when the id is unknown.
func (s *Store) Get(id int64) (*models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Raw(`
		SELECT
			Z_PK AS id,
			ZTITLE AS title,
			ZINGREDIENTS AS ingredients,
			ZINSTRUCTIONS AS instructions,
			ZNOTES AS notes,
			ZNUTRITION AS nutrition,
			ZYIELD AS yield,
			ZPREPTIME AS prep_time,
			ZCOOKTIME AS cook_time,
			ZTOTALTIME AS total_time,
			ZFAVORITE AS favorite,
			ZWANTTOCOOK AS want_to_cook,
			ZLINK AS link
		FROM ZRECIPEOBJECT
		WHERE Z_PK = ?`,
		id,
	).Scan(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return &recipes[0], nil
}

// List returns all recipes, optionally filtered to favorites or the
// want-to-cook queue, ordered by title.
func (s *Store) List(filter string) ([]models.RecipeListing, error) {
	query := `
		SELECT
			Z_PK AS id,
			ZTITLE AS title,
			ZFAVORITE AS favorite,
			ZWANTTOCOOK AS want_to_cook
		FROM ZRECIPEOBJECT`

	switch filter {
	case FilterFavorites:
		query += " WHERE ZFAVORITE = 1"
	case FilterWantToCook:
		query += " WHERE ZWANTTOCOOK = 1"
	case FilterAll, "":
	default:
		return nil, fmt.Errorf("unknown recipe filter %q", filter)
	}
	query += " ORDER BY ZTITLE"

	var results []models.RecipeListing
	if err := s.db.Raw(query).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return results, nil
}
