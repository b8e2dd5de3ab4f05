// Package nutrient resolves food names against heterogeneous nutrient
// catalogs: an embedded local catalog, an embedded community catalog and the
// USDA FoodData Central API. Every source degrades to empty results on
// failure: a missing database, corrupt rows or a dead network never surface
// as errors to callers.
package nutrient

import "context"

// Record is one catalog entry's nutrient values for a single reference
// serving. ServingGrams is always positive; sources substitute 100 g when
// the stored serving size is unknown or unparseable.
type Record struct {
	Description  string  `json:"description"`
	Calories     float64 `json:"calories"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
	SodiumMg     float64 `json:"sodium_mg"`
	FiberG       float64 `json:"fiber_g"`
	Source       string  `json:"source"`
	ServingGrams float64 `json:"serving_grams"`
}

// defaultServingGrams is assumed when a source cannot determine serving size.
const defaultServingGrams = 100.0

// Source is a single nutrient catalog. Search returns up to limit matching
// records and never fails: any backend problem yields an empty slice.
type Source interface {
	// Name is the configuration key identifying the source ("local",
	// "community", "usda").
	Name() string
	Search(ctx context.Context, term string, limit int) []Record
}
