package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBack(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.json"))
	if p.VarietyMode != VarietyBalanced {
		t.Errorf("variety mode = %q, want balanced default", p.VarietyMode)
	}
	if len(p.Allergies) != 0 || len(p.DietaryRestrictions) != 0 {
		t.Errorf("default profile should be unrestricted: %+v", p)
	}
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if p := Load(path); p.VarietyMode != VarietyBalanced {
		t.Errorf("malformed profile should fall back, got %+v", p)
	}
}

func TestLoadNormalizesCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	body := `{
		"allergies": ["Peanuts", " SHELLFISH "],
		"dietary_restrictions": ["Vegetarian"],
		"cuisine_preferences": ["Italian"],
		"cooking_skill": "Basic",
		"budget": "Moderate",
		"meal_variety": "Explore"
	}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	p := Load(path)
	if p.Allergies[0] != "peanuts" || p.Allergies[1] != "shellfish" {
		t.Errorf("allergies not normalized: %+v", p.Allergies)
	}
	if p.CookingSkill != "basic" || p.Budget != "moderate" || p.VarietyMode != "explore" {
		t.Errorf("fields not normalized: %+v", p)
	}
}
