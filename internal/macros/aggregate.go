// Package macros combines parsed food mentions with resolved nutrient
// records into meal totals. Items that cannot be resolved contribute nothing
// and are reported by name instead of being estimated.
package macros

import (
	"context"

	"github.com/macrohub/server/internal/foodparse"
	"github.com/macrohub/server/internal/lexicon"
	"github.com/macrohub/server/internal/nutrient"
)

// ResolvedItem records which catalog entry satisfied a food mention.
type ResolvedItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Source   string  `json:"source"`
}

// Totals is the accumulated nutrient content of one analyzed meal.
type Totals struct {
	Calories   float64        `json:"calories"`
	ProteinG   float64        `json:"protein_g"`
	CarbsG     float64        `json:"carbs_g"`
	FatG       float64        `json:"fat_g"`
	SodiumMg   float64        `json:"sodium_mg"`
	FiberG     float64        `json:"fiber_g"`
	Items      []ResolvedItem `json:"items"`
	Unresolved []string       `json:"unresolved"`
}

// Finder is the slice of the resolver the aggregator needs.
type Finder interface {
	Resolve(ctx context.Context, term string, limit int) []nutrient.Record
}

// Aggregator turns mentions into totals using a nutrient finder.
type Aggregator struct {
	finder Finder
}

// NewAggregator creates an aggregator over the given finder.
func NewAggregator(finder Finder) *Aggregator {
	return &Aggregator{finder: finder}
}

// Aggregate resolves each mention with limit 1 and accumulates scaled
// nutrients. A failed resolution records the raw name under Unresolved and
// never aborts the remaining mentions.
func (a *Aggregator) Aggregate(ctx context.Context, mentions []foodparse.Mention) Totals {
	totals := Totals{
		Items:      []ResolvedItem{},
		Unresolved: []string{},
	}

	for _, m := range mentions {
		records := a.finder.Resolve(ctx, m.Name, 1)
		if len(records) == 0 {
			totals.Unresolved = append(totals.Unresolved, m.Name)
			continue
		}

		record := records[0]
		multiplier := servingMultiplier(m.Quantity, m.Unit, record.ServingGrams)

		totals.Calories += record.Calories * multiplier
		totals.ProteinG += record.ProteinG * multiplier
		totals.CarbsG += record.CarbsG * multiplier
		totals.FatG += record.FatG * multiplier
		totals.SodiumMg += record.SodiumMg * multiplier
		totals.FiberG += record.FiberG * multiplier

		totals.Items = append(totals.Items, ResolvedItem{
			Name:     record.Description,
			Quantity: m.Quantity,
			Unit:     m.Unit,
			Source:   record.Source,
		})
	}

	return totals
}

// servingMultiplier converts an input quantity/unit into a multiple of the
// record's reference serving. Mass units scale against serving grams; every
// other unit (pieces, cups, servings) multiplies the serving directly.
func servingMultiplier(quantity float64, unit string, servingGrams float64) float64 {
	switch unit {
	case lexicon.UnitGrams:
		if servingGrams > 0 {
			return quantity / servingGrams
		}
		return quantity / 100
	case lexicon.UnitOunces:
		grams := quantity * lexicon.GramsPerOunce
		if servingGrams > 0 {
			return grams / servingGrams
		}
		return quantity
	default:
		return quantity
	}
}
