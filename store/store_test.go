package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pmehta/healthtrack/models"
	"github.com/pmehta/healthtrack/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "health_data.json"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	st := testStore(t)

	doc, fresh := st.Load()
	if !fresh {
		t.Fatal("expected fresh=true for a missing file")
	}
	if doc.Profile.Populated() {
		t.Errorf("expected empty profile, got %+v", doc.Profile)
	}
	if len(doc.Meals) != 0 || len(doc.Exercises) != 0 || len(doc.Goals) != 0 {
		t.Errorf("expected empty collections, got %+v", doc)
	}
	if st.Recovered() {
		t.Error("a missing file is a normal first run, not a recovery")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := testStore(t)

	doc := models.NewDocument()
	doc.Profile = models.Profile{
		Name: "Asha", Age: 31, Gender: models.GenderFemale,
		Weight: 62, Height: 165,
		ActivityLevel: models.ActivityModerate, Goal: models.GoalLoseWeight,
		BMR: 1413.5, DailyCalories: 2190.9, TargetCalories: 1690.9,
	}
	doc.Meals = append(doc.Meals, models.MealEntry{
		Date:     "2026-08-30",
		MealType: models.MealLunch,
		Items: []models.FoodItem{
			{Name: "rice bowl", Calories: 420, Protein: "12g", Carbs: "70g", Fat: "9g"},
		},
		TotalCalories: 420,
		HealthScore:   "moderate",
		Suggestions:   "add greens",
		Timestamp:     "2026-08-30T13:05:00Z",
	})
	doc.Exercises = append(doc.Exercises, models.ExerciseEntry{
		Date: "2026-08-30", Type: "Running", Duration: 30,
		Intensity: models.IntensityModerate, CaloriesBurned: 341,
		Notes: "easy pace", Timestamp: "2026-08-30T07:00:00Z",
	})

	if err := st.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, fresh := st.Load()
	if fresh {
		t.Fatal("expected fresh=false after save")
	}
	if !reflect.DeepEqual(doc, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", doc, loaded)
	}
}

func TestLoadCorruptFileRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_data.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	st := store.New(path)
	doc, fresh := st.Load()
	if !fresh {
		t.Fatal("expected fresh=true for a corrupt file")
	}
	if doc.Profile.Populated() || len(doc.Meals) != 0 {
		t.Errorf("expected default document, got %+v", doc)
	}
	if !st.Recovered() {
		t.Error("expected the recovery to be surfaced")
	}
}

func TestLoadNormalizesNilCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_data.json")
	if err := os.WriteFile(path, []byte(`{"profile": {"name": "Ravi", "age": 40}}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	st := store.New(path)
	doc, _ := st.Load()
	if doc.Meals == nil || doc.Exercises == nil || doc.Goals == nil {
		t.Errorf("collections not normalized: %+v", doc)
	}
	if doc.Profile.Name != "Ravi" {
		t.Errorf("profile lost: %+v", doc.Profile)
	}
}

func TestSaveOverwritesPriorContent(t *testing.T) {
	st := testStore(t)

	first := models.NewDocument()
	first.Meals = append(first.Meals, models.MealEntry{Date: "2026-08-29", MealType: models.MealDinner, Items: []models.FoodItem{}, TotalCalories: 800, HealthScore: "unhealthy", Timestamp: "2026-08-29T20:00:00Z"})
	if err := st.Save(first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := models.NewDocument()
	if err := st.Save(second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	loaded, _ := st.Load()
	if len(loaded.Meals) != 0 {
		t.Errorf("expected prior content to be gone, got %d meals", len(loaded.Meals))
	}
}
