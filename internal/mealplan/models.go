// Package mealplan suggests meals from a curated template catalog. Templates
// are filtered against the user's dietary profile, scored against the
// remaining macro budget and recent eating history, and returned best first.
package mealplan

import "github.com/macrohub/server/internal/history"

// Tags carries the soft attributes of a template used by filtering and
// scoring.
type Tags struct {
	Dietary      []string `json:"dietary"`
	Cuisines     []string `json:"cuisines"`
	Seasons      []string `json:"seasons"`
	Difficulty   string   `json:"difficulty"`
	CookingSkill string   `json:"cooking_skill"`
	Budget       string   `json:"budget"`
	PrepTimeMin  int      `json:"prep_time_min"`
}

// Template is one curated meal.
type Template struct {
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	ProteinG    int      `json:"protein"`
	CarbsG      int      `json:"carbs"`
	FatG        int      `json:"fat"`
	SodiumMg    int      `json:"sodium"`
	MealTypes   []string `json:"meal_types"`
	Ingredients []string `json:"ingredients"`
	Allergens   []string `json:"allergens"`
	Tags        Tags     `json:"tags"`
}

// Budget is what is left of today's targets plus the targets themselves.
// Remaining values never go below zero.
type Budget struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fat"`
	SodiumMg int `json:"sodium"`

	CalorieTarget int `json:"cal_target"`
	ProteinTarget int `json:"protein_target"`
	CarbTarget    int `json:"carb_target"`
	FatTarget     int `json:"fat_target"`
	SodiumLimit   int `json:"sodium_limit"`

	Consumed       history.Consumed `json:"consumed"`
	MealsRemaining int              `json:"meals_remaining"`
}

// Suggestion is one scored meal recommendation.
type Suggestion struct {
	Template Template `json:"template"`
	Score    float64  `json:"score"`
}

// Result is one suggestion run: the budget snapshot the suggestions were
// scored against, the soft filters that had to be relaxed, and the scored
// suggestions best first.
type Result struct {
	Remaining      Budget       `json:"remaining"`
	RelaxedFilters []string     `json:"relaxed_filters"`
	Suggestions    []Suggestion `json:"suggestions"`
}
