package suggest

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/larderhq/larder/internal/db"
	"github.com/larderhq/larder/internal/models"
)

func testDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.New(db.DefaultConfig(filepath.Join(t.TempDir(), "meals.db")))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func dateAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(db.DateFormat)
}

func cook(t *testing.T, database *db.DB, title string, daysAgo int, tags models.TagSet) {
	t.Helper()
	meal := models.Meal{Date: dateAgo(daysAgo), Title: title, Status: models.StatusCooked, Tags: tags}
	if err := database.CreateMeal(&meal); err != nil {
		t.Fatalf("CreateMeal(%q): %v", title, err)
	}
}

func TestSuggest_EmptyLedger(t *testing.T) {
	engine := New(testDB(t))

	s, err := engine.Suggest(0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(s.NoveltyCandidates) != 0 {
		t.Errorf("NoveltyCandidates = %v", s.NoveltyCandidates)
	}
	if len(s.TagFrequency) != 0 {
		t.Errorf("TagFrequency = %v", s.TagFrequency)
	}
	// Empty frequency must not attempt an average
	if len(s.OverRepresentedTags) != 0 || len(s.UnderRepresentedTags) != 0 {
		t.Errorf("over/under = %v / %v", s.OverRepresentedTags, s.UnderRepresentedTags)
	}
	if len(s.FrequentAdhocMeals) != 0 {
		t.Errorf("FrequentAdhocMeals = %v", s.FrequentAdhocMeals)
	}
}

func TestSuggest_FrequentAdhocMeals(t *testing.T) {
	database := testDB(t)

	for i := 0; i < 3; i++ {
		cook(t, database, "Leftovers", 5+i, nil)
	}
	for i := 0; i < 2; i++ {
		cook(t, database, "Toast", 5+i, nil)
	}
	// Linked meals never count as ad-hoc
	recipeID := int64(4)
	for i := 0; i < 5; i++ {
		meal := models.Meal{Date: dateAgo(5 + i), Title: "Curry", Status: models.StatusCooked, RecipeID: &recipeID}
		if err := database.CreateMeal(&meal); err != nil {
			t.Fatalf("CreateMeal: %v", err)
		}
	}
	// Planned meals never count either
	planned := models.Meal{Date: dateAgo(2), Title: "Leftovers", Status: models.StatusPlanned}
	if err := database.CreateMeal(&planned); err != nil {
		t.Fatalf("CreateMeal: %v", err)
	}

	s, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	want := []models.AdhocMeal{{Title: "Leftovers", Count: 3}}
	if !reflect.DeepEqual(s.FrequentAdhocMeals, want) {
		t.Errorf("FrequentAdhocMeals = %v, want %v", s.FrequentAdhocMeals, want)
	}
}

func TestSuggest_AdhocTiebreakIsStable(t *testing.T) {
	database := testDB(t)

	for _, title := range []string{"Omelette", "Leftovers"} {
		for i := 0; i < 3; i++ {
			cook(t, database, title, 5+i, nil)
		}
	}

	s, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(s.FrequentAdhocMeals) != 2 {
		t.Fatalf("got %v", s.FrequentAdhocMeals)
	}
	// Equal counts fall back to title order
	if s.FrequentAdhocMeals[0].Title != "Leftovers" || s.FrequentAdhocMeals[1].Title != "Omelette" {
		t.Errorf("order = %v", s.FrequentAdhocMeals)
	}
}

func TestSuggest_TagRepresentation(t *testing.T) {
	database := testDB(t)

	// pasta:6, soup:2, salad:1 -> avg 3; over > 4.5, under < 1.5
	for i := 0; i < 6; i++ {
		cook(t, database, "Pasta Night", 5+i, models.TagSet{"pasta"})
	}
	for i := 0; i < 2; i++ {
		cook(t, database, "Soup", 20+i, models.TagSet{"soup"})
	}
	cook(t, database, "Big Salad", 25, models.TagSet{"salad"})

	s, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}

	if _, ok := s.OverRepresentedTags["pasta"]; !ok {
		t.Errorf("pasta missing from over-represented: %v", s.OverRepresentedTags)
	}
	if _, ok := s.UnderRepresentedTags["salad"]; !ok {
		t.Errorf("salad missing from under-represented: %v", s.UnderRepresentedTags)
	}
	if _, ok := s.OverRepresentedTags["soup"]; ok {
		t.Errorf("soup should not be over-represented: %v", s.OverRepresentedTags)
	}
	if _, ok := s.UnderRepresentedTags["soup"]; ok {
		t.Errorf("soup should not be under-represented: %v", s.UnderRepresentedTags)
	}
}

func TestSuggest_NoveltyCandidates(t *testing.T) {
	database := testDB(t)

	cook(t, database, "Soup", 40, nil)
	cook(t, database, "Tacos", 10, nil)

	s, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(s.NoveltyCandidates) != 1 {
		t.Fatalf("NoveltyCandidates = %v", s.NoveltyCandidates)
	}
	if s.NoveltyCandidates[0].Title != "Soup" {
		t.Errorf("candidate = %+v", s.NoveltyCandidates[0])
	}
}

func TestSuggest_Idempotent(t *testing.T) {
	database := testDB(t)
	cook(t, database, "Soup", 40, models.TagSet{"soup"})
	for i := 0; i < 3; i++ {
		cook(t, database, "Leftovers", 5+i, nil)
	}

	first, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	second, err := New(database).Suggest(90)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("suggestions differ with no intervening writes:\n%+v\n%+v", first, second)
	}
}
