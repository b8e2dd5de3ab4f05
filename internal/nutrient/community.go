package nutrient

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

// CommunitySource searches the community-maintained OpenNutrition catalog.
// Its serving size is a free-form string (compact JSON or "85 g" text) that
// defaults to 100 g when it cannot be parsed.
type CommunitySource struct {
	db *sql.DB
}

// NewCommunitySource opens the community catalog at path. A missing or
// unopenable database yields a source that returns no results.
func NewCommunitySource(path string) *CommunitySource {
	if path == "" {
		return &CommunitySource{}
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("community catalog unavailable: %v", err)
		return &CommunitySource{}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		log.Printf("community catalog open failed: %v", err)
		return &CommunitySource{}
	}
	return &CommunitySource{db: db}
}

// Name implements Source.
func (s *CommunitySource) Name() string { return "community" }

// Close releases the underlying database handle.
func (s *CommunitySource) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Search implements Source.
func (s *CommunitySource) Search(ctx context.Context, term string, limit int) []Record {
	if s.db == nil {
		return nil
	}

	const query = `SELECT name, calories, protein, carbohydrates, total_fat, sodium, dietary_fiber, serving
	               FROM opennutrition WHERE name LIKE ? LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, "%"+term+"%", limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var results []Record
	for rows.Next() {
		var (
			name                                    sql.NullString
			cal, protein, carbs, fat, sodium, fiber sql.NullFloat64
			serving                                 sql.NullString
		)
		if err := rows.Scan(&name, &cal, &protein, &carbs, &fat, &sodium, &fiber, &serving); err != nil {
			continue
		}
		if !name.Valid || name.String == "" || !cal.Valid {
			continue
		}

		results = append(results, Record{
			Description:  name.String,
			Calories:     cal.Float64,
			ProteinG:     protein.Float64,
			CarbsG:       carbs.Float64,
			FatG:         fat.Float64,
			SodiumMg:     sodium.Float64,
			FiberG:       fiber.Float64,
			Source:       "OpenNutrition",
			ServingGrams: parseServingGrams(serving.String),
		})
	}

	return results
}
