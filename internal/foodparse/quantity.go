package foodparse

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/macrohub/server/internal/lexicon"
)

// quantityWindow bounds how far back before a food mention the quantity
// extractor looks. Anything further back belongs to an earlier item
// ("200g chicken breast and a cup of rice": for rice, only "a cup of "
// may be inspected).
const quantityWindow = 40

// Explicit number + unit forms, tried in order. The grams pattern tolerates
// a missing trailing space ("200g chicken"), the others require one so a
// number glued to the food token is not misread as a unit quantity.
var numberUnitPatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:g|grams?)\s*$`), lexicon.UnitGrams},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:oz|ounces?)\s+$`), lexicon.UnitOunces},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*cups?\s+(?:of\s+)?$`), "cup"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*bowls?\s+(?:of\s+)?$`), "bowl"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*glasses?\s+(?:of\s+)?$`), "glass"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*servings?\s+(?:of\s+)?$`), lexicon.UnitServings},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*pieces?\s+(?:of\s+)?$`), "pieces"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*slices?\s+(?:of\s+)?$`), "slices"},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:tablespoons?|tbsp)\s+(?:of\s+)?$`), "tbsp"},
}

var (
	// Number glued directly to the food token: "2eggs", "3x burger".
	attachedNumberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*x\s*)?$`)
	// Bare number followed by whitespace: "2 eggs".
	bareNumberRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+$`)

	wordUnitRe     *regexp.Regexp
	trailingWordRe *regexp.Regexp
)

func init() {
	// Longest-first alternation so "half" is preferred over the article "a"
	// in "half a cup of".
	words := make([]string, 0, len(lexicon.WordNumbers))
	for w := range lexicon.WordNumbers {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	alt := strings.Join(words, "|")

	wordUnitRe = regexp.MustCompile(
		`(?:^|\s)(` + alt + `)\s+(?:an?\s+)?(cups?|bowls?|glasses?|servings?|pieces?|slices?|tablespoons?|tbsp)\s+(?:of\s+)?$`)
	trailingWordRe = regexp.MustCompile(`(?:^|\s)(` + alt + `)\s+(?:an?\s+)?$`)
}

// extractQuantity inspects the text immediately preceding a food mention and
// returns its quantity and unit. Cascade, highest priority first:
//
//  1. explicit number + unit ("200g", "3 oz ", "2 cups of")
//  2. number glued to the food token ("2eggs")
//  3. word-number + unit ("a cup of", "two slices of")
//  4. bare trailing number ("2 eggs")
//  5. trailing word-number ("some broccoli", "half an avocado")
//
// Anything else defaults to one serving.
func extractQuantity(before string) (float64, string) {
	window := before
	if len(window) > quantityWindow {
		window = window[len(window)-quantityWindow:]
	}

	for _, p := range numberUnitPatterns {
		if m := p.re.FindStringSubmatch(window); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return v, p.unit
			}
		}
	}

	if m := attachedNumberRe.FindStringSubmatch(window); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, lexicon.UnitServings
		}
	}

	if m := wordUnitRe.FindStringSubmatch(window); m != nil {
		v, _ := lexicon.WordNumber(m[1])
		unit, ok := lexicon.NormalizeUnit(m[2])
		if !ok {
			unit = lexicon.UnitServings
		}
		return v, unit
	}

	if m := bareNumberRe.FindStringSubmatch(window); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, lexicon.UnitServings
		}
	}

	if m := trailingWordRe.FindStringSubmatch(window); m != nil {
		if v, ok := lexicon.WordNumber(m[1]); ok {
			return v, lexicon.UnitServings
		}
	}

	return 1, lexicon.UnitServings
}
