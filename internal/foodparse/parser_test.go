package foodparse

import (
	"reflect"
	"testing"
)

func TestParseGramQuantity(t *testing.T) {
	p := NewParser(DefaultCatalog())

	mentions := p.Parse("200g chicken breast")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d: %+v", len(mentions), mentions)
	}
	m := mentions[0]
	if m.Name != "chicken breast" || m.Quantity != 200 || m.Unit != "g" {
		t.Errorf("unexpected mention: %+v", m)
	}
}

func TestParseMultipleItemsWindowIsolation(t *testing.T) {
	p := NewParser(DefaultCatalog())

	// The gram quantity belongs to the chicken only; rice picks up "a cup of"
	// from its own trailing window.
	mentions := p.Parse("200g chicken breast and a cup of rice")
	if len(mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d: %+v", len(mentions), mentions)
	}

	byName := map[string]Mention{}
	for _, m := range mentions {
		byName[m.Name] = m
	}

	chicken, ok := byName["chicken breast"]
	if !ok || chicken.Quantity != 200 || chicken.Unit != "g" {
		t.Errorf("unexpected chicken mention: %+v", chicken)
	}
	rice, ok := byName["rice"]
	if !ok || rice.Quantity != 1 || rice.Unit != "cup" {
		t.Errorf("unexpected rice mention: %+v", rice)
	}
}

func TestParsePhrasePreemptsKeyword(t *testing.T) {
	p := NewParser(DefaultCatalog())

	mentions := p.Parse("I had chicken breast for lunch")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d: %+v", len(mentions), mentions)
	}
	if mentions[0].Name != "chicken breast" {
		t.Errorf("phrase should win over keyword, got %q", mentions[0].Name)
	}
}

func TestParseLongerPhraseClaimsSpan(t *testing.T) {
	p := NewParser(DefaultCatalog())

	// "whole wheat bread" contains "wheat bread"; the more specific phrase
	// is the name the nutrient catalogs answer for.
	mentions := p.Parse("two slices of whole wheat bread")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d: %+v", len(mentions), mentions)
	}
	if mentions[0].Name != "whole wheat bread" {
		t.Errorf("got %q, want the longer phrase", mentions[0].Name)
	}
}

func TestParseQuantityCascade(t *testing.T) {
	p := NewParser(DefaultCatalog())

	tests := []struct {
		text     string
		name     string
		quantity float64
		unit     string
	}{
		{"3 oz salmon", "salmon", 3, "oz"},
		{"2 cups of rice", "rice", 2, "cup"},
		{"two slices of bread", "bread", 2, "slices"},
		{"2 eggs for breakfast", "egg", 2, "servings"},
		{"2eggs", "egg", 2, "servings"},
		{"half an avocado", "avocado", 0.5, "servings"},
		{"half a cup of yogurt", "yogurt", 0.5, "cup"},
		{"some broccoli", "broccoli", 1, "servings"},
		{"chicken breast", "chicken breast", 1, "servings"},
		{"3 servings of pasta", "pasta", 3, "servings"},
	}

	for _, tt := range tests {
		mentions := p.Parse(tt.text)
		if len(mentions) != 1 {
			t.Errorf("%q: expected 1 mention, got %d: %+v", tt.text, len(mentions), mentions)
			continue
		}
		m := mentions[0]
		if m.Name != tt.name || m.Quantity != tt.quantity || m.Unit != tt.unit {
			t.Errorf("%q: got %+v, want {%s %v %s}", tt.text, m, tt.name, tt.quantity, tt.unit)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	p := NewParser(DefaultCatalog())
	text := "200g chicken breast, a cup of rice and two eggs with greek yogurt"

	first := p.Parse(text)
	second := p.Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseRepeatedFoodCountsEachOccurrence(t *testing.T) {
	p := NewParser(DefaultCatalog())

	mentions := p.Parse("white rice for lunch and brown rice for dinner")
	if len(mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d: %+v", len(mentions), mentions)
	}
	if mentions[0].Name != "white rice" || mentions[1].Name != "brown rice" {
		t.Errorf("unexpected mentions: %+v", mentions)
	}
}

func TestParseUnknownAndEmptyInput(t *testing.T) {
	p := NewParser(DefaultCatalog())

	if got := p.Parse("dragonfruit smoothie deluxe"); len(got) != 0 {
		t.Errorf("unknown foods should be omitted, got %+v", got)
	}
	if got := p.Parse(""); len(got) != 0 {
		t.Errorf("empty input should yield no mentions, got %+v", got)
	}
}

func TestParseSpansNeverOverlap(t *testing.T) {
	// Each parsed name must be re-findable in disjoint regions of the text.
	// "chicken breast" overlaps "chicken": accepting both would double-count.
	p := NewParser(DefaultCatalog())

	inputs := []string{
		"chicken breast with chicken wing",
		"fried rice and white rice and rice",
		"burger king burger and a burger",
		"peanut butter and butter and peanuts",
	}
	for _, text := range inputs {
		mentions := p.Parse(text)
		total := 0
		for _, m := range mentions {
			total += len(m.Name)
		}
		if total > len(text) {
			t.Errorf("%q: mention spans exceed input length, must overlap: %+v", text, mentions)
		}
	}
}
