package mealplan

import (
	"strings"

	"github.com/macrohub/server/internal/profile"
)

// minFilteredResults is the threshold below which soft filters are
// progressively relaxed.
const minFilteredResults = 3

var (
	skillLevels  = []string{"basic", "intermediate", "advanced"}
	budgetLevels = []string{"budget", "moderate", "premium"}

	// Mapping from profile restriction to the dietary tag a template must
	// carry to qualify.
	restrictionTags = map[string]string{
		"vegetarian":  "vegetarian",
		"vegan":       "vegan",
		"gluten-free": "gluten_free",
		"gluten_free": "gluten_free",
		"dairy-free":  "dairy_free",
		"dairy_free":  "dairy_free",
		"keto":        "keto",
		"low_sodium":  "low_sodium",
	}

	// Which difficulties fit which meal slots.
	difficultyByMealType = map[string][]string{
		"breakfast": {"easy"},
		"lunch":     {"easy", "medium"},
		"dinner":    {"easy", "medium", "hard"},
		"snack":     {"easy"},
	}

	// Soft filters relaxed in this order until enough templates remain.
	relaxationOrder = []string{"budget", "cooking_skill", "seasons", "difficulty", "dislikes"}
)

// Filter selects the templates compatible with the profile for the given
// meal type and season. Allergen, restriction, and meal-type filters are
// never relaxed; soft filters relax progressively when fewer than
// minFilteredResults templates survive. The returned slice preserves catalog
// order; the second return lists the relaxed filter names.
func Filter(templates []Template, p profile.Profile, mealType, season string) ([]Template, []string) {
	f := newFilterer(p, mealType, season)

	relaxed := make(map[string]bool)
	filtered := f.apply(templates, relaxed)

	var relaxedNames []string
	for _, key := range relaxationOrder {
		if len(filtered) >= minFilteredResults {
			break
		}
		relaxed[key] = true
		relaxedNames = append(relaxedNames, key)
		filtered = f.apply(templates, relaxed)
	}

	return filtered, relaxedNames
}

type filterer struct {
	profile             profile.Profile
	mealType            string
	season              string
	skillIdx            int
	budgetIdx           int
	allowedDifficulties []string
}

func newFilterer(p profile.Profile, mealType, season string) *filterer {
	allowed, ok := difficultyByMealType[strings.ToLower(mealType)]
	if !ok {
		allowed = []string{"easy", "medium", "hard"}
	}
	return &filterer{
		profile:             p,
		mealType:            strings.ToLower(mealType),
		season:              season,
		skillIdx:            levelIndex(skillLevels, p.CookingSkill),
		budgetIdx:           levelIndex(budgetLevels, p.Budget),
		allowedDifficulties: allowed,
	}
}

// levelIndex returns the position of level in the ordered scale, or the top
// of the scale when the level is unknown (no constraint).
func levelIndex(levels []string, level string) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}
	return len(levels) - 1
}

func (f *filterer) apply(templates []Template, relaxed map[string]bool) []Template {
	var out []Template
	for _, t := range templates {
		if f.passesHard(t) && f.passesSoft(t, relaxed) {
			out = append(out, t)
		}
	}
	return out
}

// passesHard applies the filters that are never relaxed.
func (f *filterer) passesHard(t Template) bool {
	for _, allergy := range f.profile.Allergies {
		if containsFold(t.Allergens, allergy) {
			return false
		}
	}

	for _, restriction := range f.profile.DietaryRestrictions {
		required, ok := restrictionTags[restriction]
		if !ok {
			continue
		}
		if !containsFold(t.Tags.Dietary, required) {
			return false
		}
	}

	if f.mealType != "" && !containsFold(t.MealTypes, f.mealType) {
		return false
	}

	return true
}

func (f *filterer) passesSoft(t Template, relaxed map[string]bool) bool {
	if !relaxed["dislikes"] && len(f.profile.Dislikes) > 0 {
		ingredients := strings.ToLower(strings.Join(t.Ingredients, " "))
		for _, d := range f.profile.Dislikes {
			if strings.Contains(ingredients, d) {
				return false
			}
		}
	}

	if !relaxed["seasons"] {
		seasons := t.Tags.Seasons
		if len(seasons) == 0 {
			seasons = []string{"all"}
		}
		if !containsFold(seasons, "all") && !containsFold(seasons, f.season) {
			return false
		}
	}

	if !relaxed["difficulty"] {
		difficulty := strings.ToLower(t.Tags.Difficulty)
		if difficulty == "" {
			difficulty = "easy"
		}
		if !containsFold(f.allowedDifficulties, difficulty) {
			return false
		}
	}

	if !relaxed["cooking_skill"] && f.profile.CookingSkill != "" {
		skill := strings.ToLower(t.Tags.CookingSkill)
		idx := 0
		if skill != "" {
			idx = levelIndexOrZero(skillLevels, skill)
		}
		if idx > f.skillIdx {
			return false
		}
	}

	if !relaxed["budget"] && f.profile.Budget != "" {
		budget := strings.ToLower(t.Tags.Budget)
		idx := 0
		if budget != "" {
			idx = levelIndexOrZero(budgetLevels, budget)
		}
		if idx > f.budgetIdx {
			return false
		}
	}

	return true
}

// levelIndexOrZero is levelIndex with unknown levels mapping to the bottom
// of the scale (template side: unknown means unconstrained).
func levelIndexOrZero(levels []string, level string) int {
	for i, l := range levels {
		if l == level {
			return i
		}
	}
	return 0
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
