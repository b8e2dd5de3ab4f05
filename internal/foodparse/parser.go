// Package foodparse turns free-text meal descriptions into structured food
// mentions with quantity and unit. Matching is vocabulary-driven: unknown
// foods are silently omitted, and parsing never fails.
package foodparse

import "strings"

// Mention is one recognized food occurrence extracted from text.
type Mention struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type span struct {
	start, end int
}

// Parser matches an injected catalog against lowercased input text.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	catalog Catalog
}

// NewParser creates a parser over the given vocabulary.
func NewParser(catalog Catalog) *Parser {
	return &Parser{catalog: catalog}
}

// Parse extracts food mentions from text. Multi-word phrases are matched
// first, then single keywords; a match is accepted only when its span does
// not overlap an already-accepted span, so no two mentions ever share text.
// Empty or unrecognized input yields an empty slice.
func (p *Parser) Parse(text string) []Mention {
	lower := strings.ToLower(text)

	var mentions []Mention
	var accepted []span

	scan := func(entry string) {
		from := 0
		for {
			idx := strings.Index(lower[from:], entry)
			if idx < 0 {
				return
			}
			start := from + idx
			end := start + len(entry)
			from = start + 1

			if overlapsAny(accepted, start, end) {
				continue
			}

			quantity, unit := extractQuantity(lower[:start])
			mentions = append(mentions, Mention{Name: entry, Quantity: quantity, Unit: unit})
			accepted = append(accepted, span{start: start, end: end})
		}
	}

	for _, phrase := range p.catalog.Phrases {
		scan(phrase)
	}
	for _, keyword := range p.catalog.Keywords {
		scan(keyword)
	}

	return mentions
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
