// Package history analyzes past diet logs. Logs are markdown files named
// YYYY-MM-DD.md under a diet directory; the analyzer extracts the foods eaten
// per meal, detects recurring cuisines from an ingredient map, and averages
// per-meal-type calories so suggestions can match the user's habits.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultDays is how far back the analyzer looks for recent foods.
	DefaultDays = 3
	// typicalCalorieDays is the window for per-meal-type calorie averages.
	typicalCalorieDays = 7

	defaultMealType = "meal"
	dateLayout      = "2006-01-02"

	// Content after this header belongs to generated summaries, not the log.
	summaryMarker = "## Daily Health Summary"
)

var (
	// Top-level list items: "- food" or "- food (quantity)".
	foodLineRe = regexp.MustCompile(`^- ([^(]+?)(?:\s*\(.*\))?\s*$`)
	// Meal section headers.
	mealHeaderRe = regexp.MustCompile(`(?i)^### (Breakfast|Lunch|Dinner|Snack|Meal)`)
	// Calorie estimates on indented metadata lines.
	calorieRe = regexp.MustCompile(`(?i)Est\.\s*calories?:\s*~?(\d+)`)
)

// Food is one logged item. Calories is zero when the log carried no estimate.
type Food struct {
	Name     string `json:"name"`
	MealType string `json:"meal_type"`
	Calories int    `json:"calories,omitempty"`
}

// Summary is the full history analysis for the recent window.
type Summary struct {
	ByDate           map[string][]Food  `json:"by_date"`
	AllFoodNames     []string           `json:"all_food_names"`
	TodayFoodNames   []string           `json:"today_food_names"`
	DetectedCuisines map[string]float64 `json:"detected_cuisines"`
	TypicalCalories  map[string]int     `json:"typical_calories"`
	DaysAnalyzed     int                `json:"days_analyzed"`
	BuiltDate        string             `json:"built_date"`
}

// Analyzer reads diet logs from a directory and caches the built summary for
// the current day.
type Analyzer struct {
	dietDir    string
	cachePath  string
	cuisineMap map[string]cuisineEntry
	days       int
	now        func() time.Time
}

type cuisineEntry struct {
	Cuisine    string  `json:"cuisine"`
	Confidence float64 `json:"confidence"`
}

// NewAnalyzer builds an analyzer over dietDir. cuisineMapPath and cachePath
// may be empty; cuisine detection and caching are then disabled. days <= 0
// falls back to DefaultDays.
func NewAnalyzer(dietDir, cuisineMapPath, cachePath string, days int) *Analyzer {
	if days <= 0 {
		days = DefaultDays
	}
	return &Analyzer{
		dietDir:    dietDir,
		cachePath:  cachePath,
		cuisineMap: loadCuisineMap(cuisineMapPath),
		days:       days,
		now:        time.Now,
	}
}

func loadCuisineMap(path string) map[string]cuisineEntry {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var m map[string]cuisineEntry
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// ParseDay parses the diet log for one date. A missing file yields an empty
// slice. Generated summary sections are ignored.
func (a *Analyzer) ParseDay(date string) []Food {
	data, err := os.ReadFile(filepath.Join(a.dietDir, date+".md"))
	if err != nil {
		return nil
	}

	content := string(data)
	if idx := strings.Index(content, summaryMarker); idx != -1 {
		content = content[:idx]
	}
	// Totals lines are list items too; keep them out of the food list.
	if idx := strings.Index(content, totalsMarker); idx != -1 {
		content = content[:idx]
	}

	var foods []Food
	mealType := defaultMealType

	for _, line := range strings.Split(content, "\n") {
		if m := mealHeaderRe.FindStringSubmatch(line); m != nil {
			mealType = strings.ToLower(m[1])
			continue
		}

		// Indented lines are item metadata; pull the calorie estimate onto
		// the food above, skip everything else.
		if strings.HasPrefix(line, "  ") {
			if m := calorieRe.FindStringSubmatch(line); m != nil && len(foods) > 0 {
				if cal, err := strconv.Atoi(m[1]); err == nil {
					foods[len(foods)-1].Calories = cal
				}
			}
			continue
		}

		if m := foodLineRe.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(strings.TrimSpace(m[1]))
			if name != "" {
				foods = append(foods, Food{Name: name, MealType: mealType})
			}
		}
	}

	return foods
}

// DetectCuisines maps food names to cuisines by ingredient substring match.
// Confidence accumulates per cuisine and is capped at 1.0.
func (a *Analyzer) DetectCuisines(foodNames []string) map[string]float64 {
	if len(a.cuisineMap) == 0 || len(foodNames) == 0 {
		return map[string]float64{}
	}

	allText := strings.ToLower(strings.Join(foodNames, " "))
	detected := make(map[string]float64)
	for ingredient, info := range a.cuisineMap {
		if !strings.Contains(allText, strings.ToLower(ingredient)) {
			continue
		}
		c := detected[info.Cuisine] + info.Confidence
		if c > 1.0 {
			c = 1.0
		}
		detected[info.Cuisine] = c
	}
	return detected
}

// typicalCalories averages the meal type's logged calories over the last
// window days. Days without a calorie estimate for the meal type are skipped;
// fewer than two data points yields 0 (no signal).
func (a *Analyzer) typicalCalories(mealType string, window int) int {
	var values []int
	today := a.now()
	for i := 0; i < window; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		total := 0
		for _, f := range a.ParseDay(date) {
			if f.MealType == mealType && f.Calories > 0 {
				total += f.Calories
			}
		}
		if total > 0 {
			values = append(values, total)
		}
	}

	if len(values) < 2 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}

// Build constructs a fresh summary over the analyzer's window.
func (a *Analyzer) Build() Summary {
	today := a.now()
	todayDate := today.Format(dateLayout)

	s := Summary{
		ByDate:          make(map[string][]Food, a.days),
		TypicalCalories: make(map[string]int),
		DaysAnalyzed:    a.days,
		BuiltDate:       todayDate,
	}

	for i := 0; i < a.days; i++ {
		date := today.AddDate(0, 0, -i).Format(dateLayout)
		foods := a.ParseDay(date)
		s.ByDate[date] = foods
		for _, f := range foods {
			s.AllFoodNames = append(s.AllFoodNames, f.Name)
		}
	}

	for _, f := range s.ByDate[todayDate] {
		s.TodayFoodNames = append(s.TodayFoodNames, f.Name)
	}

	s.DetectedCuisines = a.DetectCuisines(s.AllFoodNames)

	for _, mealType := range []string{"breakfast", "lunch", "dinner", "snack"} {
		if cal := a.typicalCalories(mealType, typicalCalorieDays); cal > 0 {
			s.TypicalCalories[mealType] = cal
		}
	}

	return s
}

// Summary returns the cached summary when it was built today for the same
// window, otherwise builds and caches a fresh one.
func (a *Analyzer) Summary() Summary {
	if cached, ok := a.loadCache(); ok {
		return cached
	}
	s := a.Build()
	a.saveCache(s)
	return s
}
