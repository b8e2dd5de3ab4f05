package nutrient

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

// LocalSource searches the embedded comprehensive food catalog. The catalog
// spans three tables (generic foods, branded products and restaurant menu
// items), each with its own serving-size convention.
type LocalSource struct {
	db *sql.DB
}

// NewLocalSource opens the local catalog at path. A missing or unopenable
// database yields a source that answers every search with no results.
func NewLocalSource(path string) *LocalSource {
	if path == "" {
		return &LocalSource{}
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("local catalog unavailable: %v", err)
		return &LocalSource{}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("local catalog open failed: %v", err)
		return &LocalSource{}
	}
	return &LocalSource{db: db}
}

// Name implements Source.
func (s *LocalSource) Name() string { return "local" }

// Close releases the underlying database handle.
func (s *LocalSource) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// The generic table stores serving_size directly in grams and carries no
// sodium column; branded and restaurant tables pair serving_size with a
// serving_size_unit that must be normalized.
var localTables = []struct {
	query   string
	source  string
	hasUnit bool
}{
	{
		query: `SELECT description, energy_amount, protein_amount, carb_amount, fat_amount, 0, fiber_amount, serving_size
		        FROM usda_non_branded_column WHERE description LIKE ? LIMIT ?`,
		source: "USDA",
	},
	{
		query: `SELECT description, energy_amount, protein_amount, carb_amount, fat_amount, sodiumna_amount, fiber_amount, serving_size, serving_size_unit
		        FROM usda_branded_column WHERE description LIKE ? LIMIT ?`,
		source:  "Branded",
		hasUnit: true,
	},
	{
		query: `SELECT item_description, energy_amount, protein_amount, carb_amount, fat_amount, sodium_amount, fiber_amount, serving_size, serving_size_unit
		        FROM menustat WHERE item_description LIKE ? LIMIT ?`,
		source:  "Restaurant",
		hasUnit: true,
	},
}

// Search implements Source. Rows with a missing description or calorie value
// are skipped; a failing table is skipped without aborting the others.
func (s *LocalSource) Search(ctx context.Context, term string, limit int) []Record {
	if s.db == nil {
		return nil
	}

	pattern := "%" + term + "%"
	var results []Record

	for _, table := range localTables {
		rows, err := s.db.QueryContext(ctx, table.query, pattern, limit)
		if err != nil {
			continue
		}

		for rows.Next() {
			var (
				desc                                    sql.NullString
				cal, protein, carbs, fat, sodium, fiber sql.NullFloat64
				servingSize                             sql.NullFloat64
				servingUnit                             sql.NullString
			)

			var scanErr error
			if table.hasUnit {
				scanErr = rows.Scan(&desc, &cal, &protein, &carbs, &fat, &sodium, &fiber, &servingSize, &servingUnit)
			} else {
				scanErr = rows.Scan(&desc, &cal, &protein, &carbs, &fat, &sodium, &fiber, &servingSize)
			}
			if scanErr != nil || !desc.Valid || desc.String == "" || !cal.Valid || cal.Float64 == 0 {
				continue
			}

			servingGrams := defaultServingGrams
			if table.hasUnit {
				servingGrams = normalizeServingUnit(servingSize.Float64, servingUnit.String)
			} else if servingSize.Valid && servingSize.Float64 > 0 {
				servingGrams = servingSize.Float64
			}

			results = append(results, Record{
				Description:  desc.String,
				Calories:     cal.Float64,
				ProteinG:     protein.Float64,
				CarbsG:       carbs.Float64,
				FatG:         fat.Float64,
				SodiumMg:     sodium.Float64,
				FiberG:       fiber.Float64,
				Source:       table.source,
				ServingGrams: servingGrams,
			})
		}
		rows.Close()
	}

	return results
}
