package mealplan

import (
	"math"
	"strings"

	"github.com/macrohub/server/internal/history"
	"github.com/macrohub/server/internal/profile"
)

// scoreTemplate rates a template against the remaining budget, the profile's
// preferences, and the eating history. random is the pre-drawn value for the
// random factor so callers control determinism. Higher is better; with the
// weights summing to 1.0 the score stays in [0, 1].
func scoreTemplate(t Template, b Budget, p profile.Profile, h history.Summary, random float64) float64 {
	w := weightsFor(p.VarietyMode)

	mealsRemaining := b.MealsRemaining
	if mealsRemaining < 1 {
		mealsRemaining = 1
	}
	perMealCal := float64(b.Calories) / float64(mealsRemaining)
	perMealProtein := float64(b.ProteinG) / float64(mealsRemaining)

	// Closeness of the template's calories to the per-meal share of what is
	// left. With no budget left, only light meals get partial credit.
	calorieFit := 0.0
	if perMealCal > 0 {
		calorieFit = math.Max(0, 1.0-math.Abs(float64(t.Calories)-perMealCal)/perMealCal)
	} else if t.Calories < 300 {
		calorieFit = 0.5
	}

	proteinFit := 0.5
	if perMealProtein > 0 {
		proteinFit = math.Max(0, 1.0-math.Abs(float64(t.ProteinG)-perMealProtein)/perMealProtein)
	}

	sodiumOK := 0.0
	if t.SodiumMg <= b.SodiumMg {
		sodiumOK = 1.0
	}

	templateCuisines := lowerSlice(t.Tags.Cuisines)

	cuisineBonus := 0.0
	if len(p.CuisinePreferences) > 0 {
		for _, c := range templateCuisines {
			if containsFold(p.CuisinePreferences, c) {
				cuisineBonus = 1.0
				break
			}
		}
	}

	// A cuisine absent from the recent history counts as diverse; with no
	// history at all, everything does.
	cuisineDiverse := 0.0
	if len(templateCuisines) > 0 {
		cuisineDiverse = 1.0
		for _, c := range templateCuisines {
			if _, seen := h.DetectedCuisines[c]; seen {
				cuisineDiverse = 0.0
				break
			}
		}
	}

	ingredients := lowerSlice(t.Ingredients)

	// Fraction of ingredients not seen in the recent food names.
	noveltyBonus := 0.0
	if len(ingredients) > 0 {
		if len(h.AllFoodNames) > 0 {
			novel := 0
			for _, ing := range ingredients {
				if !anyContains(h.AllFoodNames, ing) {
					novel++
				}
			}
			noveltyBonus = float64(novel) / float64(len(ingredients))
		} else {
			noveltyBonus = 1.0
		}
	}

	// Full marks when nothing overlaps with what was already eaten today.
	repetitionPenalty := 1.0
	if len(h.TodayFoodNames) > 0 && len(ingredients) > 0 {
		overlap := 0
		for _, food := range h.TodayFoodNames {
			for _, ing := range ingredients {
				if strings.Contains(ing, food) {
					overlap++
					break
				}
			}
		}
		if overlap > 0 {
			repetitionPenalty = math.Max(0, 1.0-float64(overlap)/float64(len(ingredients)))
		}
	}

	familiarityBonus := 0.0
	if len(ingredients) > 0 && len(h.AllFoodNames) > 0 {
		familiar := 0
		for _, ing := range ingredients {
			if anyContains(h.AllFoodNames, ing) {
				familiar++
			}
		}
		familiarityBonus = float64(familiar) / float64(len(ingredients))
	}

	// How close the template sits to this meal slot's typical calories.
	patternMatch := 0.0
	if len(t.MealTypes) > 0 {
		if typical := h.TypicalCalories[strings.ToLower(t.MealTypes[0])]; typical > 0 {
			patternMatch = math.Max(0, 1.0-math.Abs(float64(t.Calories-typical))/float64(typical))
		}
	}

	return w.calorieFit*calorieFit +
		w.proteinFit*proteinFit +
		w.sodiumOK*sodiumOK +
		w.cuisineBonus*cuisineBonus +
		w.cuisineDiverse*cuisineDiverse +
		w.noveltyBonus*noveltyBonus +
		w.repetitionPenalty*repetitionPenalty +
		w.familiarityBonus*familiarityBonus +
		w.patternMatch*patternMatch +
		w.randomFactor*random
}

func lowerSlice(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// anyContains reports whether any haystack entry contains needle.
func anyContains(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
