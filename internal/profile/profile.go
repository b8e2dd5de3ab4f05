// Package profile supplies the user's dietary profile. The profile is owned
// by a collaborator and read from a JSON file; a missing or malformed file
// falls back to an unrestricted default so suggestion requests always work.
package profile

import (
	"encoding/json"
	"os"
	"strings"
)

// Variety modes select the suggestion scoring weight profile.
const (
	VarietyExplore    = "explore"
	VarietyBalanced   = "balanced"
	VarietyConsistent = "consistent"
)

// Profile describes the user's dietary constraints and preferences.
// Allergies and dietary restrictions drive hard suggestion filters; the rest
// are soft preferences.
type Profile struct {
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	Dislikes            []string `json:"dislikes"`
	CuisinePreferences  []string `json:"cuisine_preferences"`
	CookingSkill        string   `json:"cooking_skill"` // basic | intermediate | advanced
	Budget              string   `json:"budget"`        // budget | moderate | premium
	VarietyMode         string   `json:"meal_variety"`  // explore | balanced | consistent
}

// Default returns the unrestricted profile used when no file is configured.
func Default() Profile {
	return Profile{VarietyMode: VarietyBalanced}
}

// Load reads a profile from path. Any failure (absent file, bad JSON)
// yields the default profile, never an error.
func Load(path string) Profile {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p.normalized()
}

// normalized lowercases every field so filter and score comparisons are
// case-insensitive.
func (p Profile) normalized() Profile {
	p.Allergies = lowerAll(p.Allergies)
	p.DietaryRestrictions = lowerAll(p.DietaryRestrictions)
	p.Dislikes = lowerAll(p.Dislikes)
	p.CuisinePreferences = lowerAll(p.CuisinePreferences)
	p.CookingSkill = strings.ToLower(strings.TrimSpace(p.CookingSkill))
	p.Budget = strings.ToLower(strings.TrimSpace(p.Budget))
	p.VarietyMode = strings.ToLower(strings.TrimSpace(p.VarietyMode))
	if p.VarietyMode == "" {
		p.VarietyMode = VarietyBalanced
	}
	return p
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
