package nutrient

import (
	"encoding/json"
	"regexp"
	"strconv"

	"github.com/macrohub/server/internal/lexicon"
)

var servingGramsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*g\b`)

// communityServing is the structured serving encoding used by the community
// catalog, e.g. {"metric": {"quantity": 85, "unit": "g"}}.
type communityServing struct {
	Metric struct {
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"metric"`
}

// parseServingGrams extracts a gram amount from a community-catalog serving
// string. It accepts the compact JSON encoding or plain text like "85 g";
// anything else falls back to the 100 g default.
func parseServingGrams(text string) float64 {
	if text == "" {
		return defaultServingGrams
	}

	var s communityServing
	if err := json.Unmarshal([]byte(text), &s); err == nil && s.Metric.Quantity > 0 {
		return s.Metric.Quantity
	}

	if m := servingGramsRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			return v
		}
	}

	return defaultServingGrams
}

// normalizeServingUnit converts a serving size with an explicit unit column
// (branded and restaurant tables) to grams. Milliliters are treated as grams;
// unknown units are assumed to be grams already.
func normalizeServingUnit(size float64, unit string) float64 {
	if size <= 0 {
		return defaultServingGrams
	}
	switch unit {
	case "oz", "ounce", "ounces":
		return size * lexicon.GramsPerOunce
	default: // g, gram, grams, ml and anything unrecognized
		return size
	}
}
