package mealplan

import (
	"encoding/json"
	"os"
)

// Store holds the meal template catalog, parsed once at construction.
// A missing or malformed file yields an empty catalog.
type Store struct {
	templates []Template
}

// NewStore loads the catalog from the given template file path.
func NewStore(path string) *Store {
	return &Store{templates: loadTemplates(path)}
}

// Templates returns the parsed catalog. Callers must not mutate it.
func (s *Store) Templates() []Template {
	return s.templates
}

func loadTemplates(path string) []Template {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc struct {
		Meals []Template `json:"meals"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc.Meals
}
