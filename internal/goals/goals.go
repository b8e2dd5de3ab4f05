// Package goals supplies daily nutrition targets. Targets come from explicit
// configuration when set, from a Mifflin-St Jeor estimate when body metrics
// are known, and from fixed fallbacks otherwise.
package goals

// Fallback targets used when nothing is configured.
const (
	DefaultCalorieTarget = 2000
	DefaultProteinG      = 75
	DefaultSodiumMg      = 2300
)

// Macro split applied when deriving carb/fat targets from calories:
// 40% carbs at 4 kcal/g, 30% fat at 9 kcal/g.
const (
	carbCalorieShare = 0.40
	fatCalorieShare  = 0.30
)

// Goals describes the user's configured nutrition goals.
type Goals struct {
	GoalType      string  // maintenance | weight_loss | muscle_gain
	WeightKg      float64 // 0 when unknown
	HeightCm      float64
	Age           int
	Sex           string // male | female
	ActivityLevel string // sedentary | light | moderate | active | very_active
	ProteinPerKg  float64
	CalorieTarget int // explicit override; 0 means derive
	SodiumLimitMg int
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// DailyCalories returns the daily calorie target. An explicit target wins;
// otherwise the Mifflin-St Jeor TDEE is estimated from body metrics and
// adjusted for the goal type; with insufficient data the fixed default
// applies.
func (g Goals) DailyCalories() int {
	if g.CalorieTarget > 0 {
		return g.CalorieTarget
	}
	if g.WeightKg <= 0 || g.HeightCm <= 0 || g.Age <= 0 {
		return DefaultCalorieTarget
	}

	bmr := 10*g.WeightKg + 6.25*g.HeightCm - 5*float64(g.Age) + 5
	if g.Sex == "female" {
		bmr = 10*g.WeightKg + 6.25*g.HeightCm - 5*float64(g.Age) - 161
	}

	multiplier, ok := activityMultipliers[g.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers["moderate"]
	}
	tdee := bmr * multiplier

	switch g.GoalType {
	case "weight_loss":
		tdee -= 500
	case "muscle_gain":
		tdee += 300
	}

	return int(tdee)
}

// DailyProteinG returns the protein target in grams, weight-based when the
// weight is known.
func (g Goals) DailyProteinG() int {
	if g.WeightKg <= 0 {
		return DefaultProteinG
	}
	perKg := g.ProteinPerKg
	if perKg <= 0 {
		perKg = 0.8
	}
	return int(g.WeightKg * perKg)
}

// DailyCarbsG derives the carbohydrate target from the calorie target.
func (g Goals) DailyCarbsG() int {
	return int(float64(g.DailyCalories()) * carbCalorieShare / 4)
}

// DailyFatG derives the fat target from the calorie target.
func (g Goals) DailyFatG() int {
	return int(float64(g.DailyCalories()) * fatCalorieShare / 9)
}

// DailySodiumMg returns the sodium ceiling in milligrams.
func (g Goals) DailySodiumMg() int {
	if g.SodiumLimitMg > 0 {
		return g.SodiumLimitMg
	}
	return DefaultSodiumMg
}
