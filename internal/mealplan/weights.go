package mealplan

import "github.com/macrohub/server/internal/profile"

// scoreWeights weighs the ten scoring factors. Every profile sums to 1.0 so
// scores stay comparable across variety modes.
type scoreWeights struct {
	calorieFit        float64
	proteinFit        float64
	sodiumOK          float64
	cuisineBonus      float64
	cuisineDiverse    float64
	noveltyBonus      float64
	repetitionPenalty float64
	familiarityBonus  float64
	patternMatch      float64
	randomFactor      float64
}

func (w scoreWeights) sum() float64 {
	return w.calorieFit + w.proteinFit + w.sodiumOK + w.cuisineBonus +
		w.cuisineDiverse + w.noveltyBonus + w.repetitionPenalty +
		w.familiarityBonus + w.patternMatch + w.randomFactor
}

var varietyWeights = map[string]scoreWeights{
	profile.VarietyExplore: {
		calorieFit:        0.25,
		proteinFit:        0.20,
		sodiumOK:          0.05,
		cuisineBonus:      0.05,
		cuisineDiverse:    0.15,
		noveltyBonus:      0.15,
		repetitionPenalty: 0.05,
		familiarityBonus:  0.00,
		patternMatch:      0.00,
		randomFactor:      0.10,
	},
	profile.VarietyBalanced: {
		calorieFit:        0.25,
		proteinFit:        0.20,
		sodiumOK:          0.08,
		cuisineBonus:      0.10,
		cuisineDiverse:    0.08,
		noveltyBonus:      0.07,
		repetitionPenalty: 0.05,
		familiarityBonus:  0.05,
		patternMatch:      0.05,
		randomFactor:      0.07,
	},
	profile.VarietyConsistent: {
		calorieFit:        0.25,
		proteinFit:        0.20,
		sodiumOK:          0.08,
		cuisineBonus:      0.15,
		cuisineDiverse:    0.00,
		noveltyBonus:      0.00,
		repetitionPenalty: 0.02,
		familiarityBonus:  0.15,
		patternMatch:      0.10,
		randomFactor:      0.05,
	},
}

// weightsFor returns the weight profile for the variety mode, defaulting to
// balanced for unknown modes.
func weightsFor(varietyMode string) scoreWeights {
	if w, ok := varietyWeights[varietyMode]; ok {
		return w
	}
	return varietyWeights[profile.VarietyBalanced]
}
