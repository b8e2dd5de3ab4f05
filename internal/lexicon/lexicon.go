// Package lexicon holds the fixed quantity/unit vocabulary used by the
// food-text parser: word-numbers and unit synonym tables. The vocabulary is
// curated and closed; unknown words are simply not quantities.
package lexicon

import "strings"

// GramsPerOunce converts avoirdupois ounces to grams.
const GramsPerOunce = 28.35

// WordNumbers maps spoken quantity words to numeric values.
var WordNumbers = map[string]float64{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "half": 0.5, "quarter": 0.25, "some": 1, "couple": 2,
}

// Canonical units. Everything that is not a mass unit bypasses serving-size
// scaling in the aggregator (the quantity is used as a raw multiplier).
const (
	UnitGrams    = "g"
	UnitOunces   = "oz"
	UnitServings = "servings"
)

var gramWords = map[string]bool{"g": true, "gram": true, "grams": true}

var ounceWords = map[string]bool{"oz": true, "ounce": true, "ounces": true}

// countWords are piece-equivalent units: one of them is one serving-sized item.
var countWords = map[string]string{
	"piece": "pieces", "pieces": "pieces",
	"slice": "slices", "slices": "slices",
	"serving": UnitServings, "servings": UnitServings,
}

// volumeWords are household volume measures. The catalogs encode serving
// sizes in grams only, so volume quantities multiply the reference serving.
var volumeWords = map[string]string{
	"cup": "cup", "cups": "cup",
	"bowl": "bowl", "bowls": "bowl",
	"glass": "glass", "glasses": "glass",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp",
}

// NormalizeUnit maps a unit word to its canonical form. The boolean reports
// whether the word is part of the unit vocabulary at all.
func NormalizeUnit(word string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	switch {
	case gramWords[w]:
		return UnitGrams, true
	case ounceWords[w]:
		return UnitOunces, true
	}
	if u, ok := countWords[w]; ok {
		return u, true
	}
	if u, ok := volumeWords[w]; ok {
		return u, true
	}
	return "", false
}

// IsMassUnit reports whether the canonical unit scales against a record's
// serving size in grams.
func IsMassUnit(unit string) bool {
	return unit == UnitGrams || unit == UnitOunces
}

// WordNumber returns the numeric value for a quantity word ("two", "half").
func WordNumber(word string) (float64, bool) {
	v, ok := WordNumbers[strings.ToLower(strings.TrimSpace(word))]
	return v, ok
}
