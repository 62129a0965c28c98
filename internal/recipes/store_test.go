package recipes

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixtureStore builds a temporary database with the Mela table layout and
// a few recipes, then opens a Store over it.
func fixtureStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "Curcuma.sqlite")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("create fixture db: %v", err)
	}

	schema := `CREATE TABLE ZRECIPEOBJECT (
		Z_PK INTEGER PRIMARY KEY,
		ZTITLE TEXT,
		ZINGREDIENTS TEXT,
		ZINSTRUCTIONS TEXT,
		ZNOTES TEXT,
		ZNUTRITION TEXT,
		ZYIELD TEXT,
		ZPREPTIME TEXT,
		ZCOOKTIME TEXT,
		ZTOTALTIME TEXT,
		ZFAVORITE INTEGER,
		ZWANTTOCOOK INTEGER,
		ZLINK TEXT
	)`
	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("create fixture table: %v", err)
	}

	rows := []struct {
		id         int64
		title      string
		ingreds    string
		favorite   int
		wantToCook int
	}{
		{1, "Fish Tacos", "fish, tortillas, cabbage", 1, 0},
		{2, "Tacos", "beef, tortillas", 0, 1},
		{3, "Tomato Soup", "tomatoes, basil", 0, 0},
	}
	for _, r := range rows {
		err := db.Exec(
			`INSERT INTO ZRECIPEOBJECT (Z_PK, ZTITLE, ZINGREDIENTS, ZINSTRUCTIONS, ZPREPTIME, ZFAVORITE, ZWANTTOCOOK)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.id, r.title, r.ingreds, fmt.Sprintf("Make %s.", r.title), "10 min", r.favorite, r.wantToCook,
		).Error
		if err != nil {
			t.Fatalf("insert fixture row: %v", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close fixture db: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.sqlite"))
	if !errors.Is(err, ErrDatabaseMissing) {
		t.Errorf("Open() error = %v, want ErrDatabaseMissing", err)
	}
}

func TestSearch_MatchesTitleAndIngredients(t *testing.T) {
	store := fixtureStore(t)

	results, err := store.Search("taco")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// "Fish Tacos" and "Tacos" by title; tortillas don't match "taco"
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Ordered by title
	if results[0].Title != "Fish Tacos" || results[1].Title != "Tacos" {
		t.Errorf("order = [%s %s]", results[0].Title, results[1].Title)
	}

	results, err = store.Search("basil")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Tomato Soup" {
		t.Errorf("ingredient search failed: %+v", results)
	}
}

func TestGet(t *testing.T) {
	store := fixtureStore(t)

	recipe, err := store.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if recipe == nil {
		t.Fatal("Get(1) = nil")
	}
	if recipe.Title != "Fish Tacos" {
		t.Errorf("Title = %q", recipe.Title)
	}
	if !recipe.Favorite {
		t.Error("Favorite should be true")
	}
	if recipe.PrepTime == nil || *recipe.PrepTime != "10 min" {
		t.Errorf("PrepTime = %v", recipe.PrepTime)
	}

	missing, err := store.Get(99)
	if err != nil {
		t.Fatalf("Get(99): %v", err)
	}
	if missing != nil {
		t.Errorf("Get(99) = %+v, want nil", missing)
	}
}

func TestList_Filters(t *testing.T) {
	store := fixtureStore(t)

	all, err := store.List(FilterAll)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}

	favs, err := store.List(FilterFavorites)
	if err != nil {
		t.Fatalf("List favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].Title != "Fish Tacos" {
		t.Errorf("favorites = %+v", favs)
	}

	queue, err := store.List(FilterWantToCook)
	if err != nil {
		t.Fatalf("List want_to_cook: %v", err)
	}
	if len(queue) != 1 || queue[0].Title != "Tacos" {
		t.Errorf("want_to_cook = %+v", queue)
	}

	if _, err := store.List("bogus"); err == nil {
		t.Error("List(bogus) should fail")
	}
}
