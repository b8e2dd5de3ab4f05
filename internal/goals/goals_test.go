package goals

import "testing"

func TestDailyCaloriesExplicitTargetWins(t *testing.T) {
	g := Goals{CalorieTarget: 1800, WeightKg: 80, HeightCm: 180, Age: 30}
	if got := g.DailyCalories(); got != 1800 {
		t.Errorf("DailyCalories() = %d, want 1800", got)
	}
}

func TestDailyCaloriesMifflinStJeor(t *testing.T) {
	g := Goals{WeightKg: 80, HeightCm: 180, Age: 30, Sex: "male", ActivityLevel: "moderate"}

	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780 * 1.55 = 2759.
	if got := g.DailyCalories(); got != 2759 {
		t.Errorf("DailyCalories() = %d, want 2759", got)
	}

	g.GoalType = "weight_loss"
	if got := g.DailyCalories(); got != 2259 {
		t.Errorf("weight_loss DailyCalories() = %d, want 2259", got)
	}

	g.Sex = "female"
	g.GoalType = "muscle_gain"
	// BMR = 1780 - 166 = 1614; TDEE = 2501.7 + 300 = 2801.7.
	if got := g.DailyCalories(); got != 2801 {
		t.Errorf("female muscle_gain DailyCalories() = %d, want 2801", got)
	}
}

func TestDailyCaloriesFallback(t *testing.T) {
	if got := (Goals{}).DailyCalories(); got != DefaultCalorieTarget {
		t.Errorf("DailyCalories() = %d, want default %d", got, DefaultCalorieTarget)
	}
}

func TestDailyProtein(t *testing.T) {
	if got := (Goals{}).DailyProteinG(); got != DefaultProteinG {
		t.Errorf("DailyProteinG() = %d, want default %d", got, DefaultProteinG)
	}
	if got := (Goals{WeightKg: 80}).DailyProteinG(); got != 64 {
		t.Errorf("DailyProteinG() = %d, want 64 (0.8 g/kg)", got)
	}
	if got := (Goals{WeightKg: 80, ProteinPerKg: 1.5}).DailyProteinG(); got != 120 {
		t.Errorf("DailyProteinG() = %d, want 120", got)
	}
}

func TestDerivedMacroTargets(t *testing.T) {
	g := Goals{CalorieTarget: 2000}
	if got := g.DailyCarbsG(); got != 200 {
		t.Errorf("DailyCarbsG() = %d, want 200", got)
	}
	if got := g.DailyFatG(); got != 66 {
		t.Errorf("DailyFatG() = %d, want 66", got)
	}
	if got := g.DailySodiumMg(); got != DefaultSodiumMg {
		t.Errorf("DailySodiumMg() = %d, want default", got)
	}
}
