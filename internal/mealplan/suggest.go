package mealplan

import (
	"math/rand"
	"sort"
	"time"

	"github.com/macrohub/server/internal/goals"
	"github.com/macrohub/server/internal/history"
	"github.com/macrohub/server/internal/profile"
)

// DefaultSuggestionCount is how many suggestions a request gets unless it
// asks otherwise.
const DefaultSuggestionCount = 5

var monthSeasons = map[time.Month]string{
	time.January:   "winter",
	time.February:  "winter",
	time.March:     "spring",
	time.April:     "spring",
	time.May:       "spring",
	time.June:      "summer",
	time.July:      "summer",
	time.August:    "summer",
	time.September: "fall",
	time.October:   "fall",
	time.November:  "fall",
	time.December:  "winter",
}

// Engine produces meal suggestions. It owns the template catalog and pulls
// targets, profile, and history from its collaborators per request.
type Engine struct {
	store    *Store
	goals    goals.Goals
	profile  func() profile.Profile
	analyzer *history.Analyzer

	now  func() time.Time
	rand func() float64
}

// NewEngine wires an engine. loadProfile is called per request so profile
// edits take effect without a restart.
func NewEngine(store *Store, g goals.Goals, loadProfile func() profile.Profile, analyzer *history.Analyzer) *Engine {
	return &Engine{
		store:    store,
		goals:    g,
		profile:  loadProfile,
		analyzer: analyzer,
		now:      time.Now,
		rand:     rand.Float64,
	}
}

// RemainingBudget computes what is left of the day's targets after
// subtracting the logged consumption, plus how many meals are plausibly
// still ahead. An empty date means today.
func (e *Engine) RemainingBudget(date string) Budget {
	now := e.now()
	if date == "" {
		date = now.Format("2006-01-02")
	}
	consumed := e.analyzer.ConsumedTotals(date)

	b := Budget{
		CalorieTarget: e.goals.DailyCalories(),
		ProteinTarget: e.goals.DailyProteinG(),
		CarbTarget:    e.goals.DailyCarbsG(),
		FatTarget:     e.goals.DailyFatG(),
		SodiumLimit:   e.goals.DailySodiumMg(),
		Consumed:      consumed,
	}

	b.Calories = clampZero(b.CalorieTarget - consumed.Calories)
	b.ProteinG = clampZero(b.ProteinTarget - consumed.ProteinG)
	b.CarbsG = clampZero(b.CarbTarget - consumed.CarbsG)
	b.FatG = clampZero(b.FatTarget - consumed.FatG)
	b.SodiumMg = clampZero(b.SodiumLimit - consumed.SodiumMg)
	b.MealsRemaining = mealsRemaining(now.Hour())

	return b
}

// mealsRemaining estimates how many meals are still ahead at the given hour.
func mealsRemaining(hour int) int {
	switch {
	case hour < 10:
		return 3
	case hour < 14:
		return 2
	default:
		return 1
	}
}

// mealTypeForHour infers the upcoming meal slot from the time of day.
func mealTypeForHour(hour int) string {
	switch {
	case hour < 10:
		return "breakfast"
	case hour < 14:
		return "lunch"
	case hour < 18:
		return "dinner"
	default:
		return "snack"
	}
}

// Suggest returns up to count scored suggestions for the meal type, best
// first, together with the budget snapshot they were scored against and the
// soft filters that had to be relaxed. Empty mealType infers the slot from
// the current hour; count <= 0 uses the default; empty date means today. An
// empty catalog yields an empty list with every soft filter relaxed in vain.
func (e *Engine) Suggest(mealType string, count int, date string) Result {
	if count <= 0 {
		count = DefaultSuggestionCount
	}

	now := e.now()
	if mealType == "" {
		mealType = mealTypeForHour(now.Hour())
	}
	season := monthSeasons[now.Month()]

	p := e.profile()
	budget := e.RemainingBudget(date)
	summary := e.analyzer.Summary()

	filtered, relaxed := Filter(e.store.Templates(), p, mealType, season)
	if relaxed == nil {
		relaxed = []string{}
	}

	suggestions := make([]Suggestion, 0, len(filtered))
	for _, t := range filtered {
		suggestions = append(suggestions, Suggestion{
			Template: t,
			Score:    scoreTemplate(t, budget, p, summary, e.rand()),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})

	if len(suggestions) > count {
		suggestions = suggestions[:count]
	}

	return Result{
		Remaining:      budget,
		RelaxedFilters: relaxed,
		Suggestions:    suggestions,
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
