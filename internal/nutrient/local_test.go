package nutrient

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func createLocalCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.sqlite")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer db.Close()

	schema := `
	CREATE TABLE usda_non_branded_column (
		description TEXT, energy_amount REAL, protein_amount REAL,
		carb_amount REAL, fat_amount REAL, fiber_amount REAL, serving_size REAL
	);
	CREATE TABLE usda_branded_column (
		description TEXT, energy_amount REAL, protein_amount REAL,
		carb_amount REAL, fat_amount REAL, sodiumna_amount REAL,
		fiber_amount REAL, serving_size REAL, serving_size_unit TEXT
	);
	CREATE TABLE menustat (
		item_description TEXT, energy_amount REAL, protein_amount REAL,
		carb_amount REAL, fat_amount REAL, sodium_amount REAL,
		fiber_amount REAL, serving_size REAL, serving_size_unit TEXT
	);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	inserts := []string{
		`INSERT INTO usda_non_branded_column VALUES ('Chicken Breast, raw', 165, 31, 0, 3.6, 0, 100)`,
		`INSERT INTO usda_non_branded_column VALUES ('', 100, 1, 1, 1, 0, 100)`,
		`INSERT INTO usda_non_branded_column VALUES ('Zero Calorie Row', 0, 1, 1, 1, 0, 100)`,
		`INSERT INTO usda_branded_column VALUES ('Chicken Breast Strips', 120, 20, 2, 3, 450, 0, 3, 'oz')`,
		`INSERT INTO menustat VALUES ('Grilled Chicken Sandwich', 380, 28, 40, 12, 900, 3, 220, 'g')`,
	}
	for _, stmt := range inserts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestLocalSourceSearch(t *testing.T) {
	src := NewLocalSource(createLocalCatalog(t))
	defer src.Close()

	got := src.Search(context.Background(), "Chicken", 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 records (blank and zero-calorie rows skipped), got %d: %+v", len(got), got)
	}

	bySource := map[string]Record{}
	for _, r := range got {
		bySource[r.Source] = r
	}

	generic := bySource["USDA"]
	if generic.Description != "Chicken Breast, raw" || generic.ServingGrams != 100 || generic.SodiumMg != 0 {
		t.Errorf("unexpected generic record: %+v", generic)
	}

	// 3 oz serving normalizes to grams.
	branded := bySource["Branded"]
	if branded.ServingGrams != 3*28.35 {
		t.Errorf("branded serving should convert oz to grams, got %v", branded.ServingGrams)
	}
	if branded.SodiumMg != 450 {
		t.Errorf("branded sodium = %v, want 450", branded.SodiumMg)
	}

	restaurant := bySource["Restaurant"]
	if restaurant.ServingGrams != 220 {
		t.Errorf("restaurant serving = %v, want 220", restaurant.ServingGrams)
	}
}

func TestLocalSourceMissingDatabase(t *testing.T) {
	src := NewLocalSource(filepath.Join(t.TempDir(), "does-not-exist.sqlite"))
	defer src.Close()

	if got := src.Search(context.Background(), "chicken", 5); got != nil {
		t.Errorf("missing database should yield no results, got %+v", got)
	}
}

func TestLocalSourceEmptyPath(t *testing.T) {
	src := NewLocalSource("")
	if got := src.Search(context.Background(), "chicken", 5); got != nil {
		t.Errorf("unconfigured source should yield no results, got %+v", got)
	}
}

func TestLocalSourceSurvivesMissingTables(t *testing.T) {
	// A catalog file with only one of the three tables still answers from it.
	path := filepath.Join(t.TempDir(), "partial.sqlite")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE usda_non_branded_column (
		description TEXT, energy_amount REAL, protein_amount REAL,
		carb_amount REAL, fat_amount REAL, fiber_amount REAL, serving_size REAL
	)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO usda_non_branded_column VALUES ('Brown Rice, cooked', 112, 2.3, 23.5, 0.8, 1.8, 100)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	src := NewLocalSource(path)
	defer src.Close()

	got := src.Search(context.Background(), "rice", 5)
	if len(got) != 1 || got[0].Description != "Brown Rice, cooked" {
		t.Errorf("expected the single generic record, got %+v", got)
	}
}
