package services

import (
	"testing"

	"github.com/dhaval-dalia/personal-diet-tracker-master/models"

	"github.com/stretchr/testify/assert"
)

func standardGoal() models.UserGoals {
	return models.UserGoals{
		TargetCalories:     2000,
		TargetProteinRatio: 30, // 150 g
		TargetCarbsRatio:   40, // 200 g
		TargetFatRatio:     30, // ~66.7 g
	}
}

func TestRecommendationsNoMealsLogged(t *testing.T) {
	recs := RuleBasedRecommendations(MacroTotals{}, standardGoal(), 0)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "first meal")
}

func TestRecommendationsLargeDeficit(t *testing.T) {
	totals := MacroTotals{Calories: 1200, Protein: 100, Carbs: 150, Fat: 40}
	recs := RuleBasedRecommendations(totals, standardGoal(), 2)

	assert.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "800 kcal under")
}

func TestRecommendationsOverTarget(t *testing.T) {
	totals := MacroTotals{Calories: 2300, Protein: 150, Carbs: 200, Fat: 60}
	recs := RuleBasedRecommendations(totals, standardGoal(), 3)

	joined := ""
	for _, r := range recs {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "exceeded your calorie target")
}

func TestRecommendationsLowProteinHighFat(t *testing.T) {
	totals := MacroTotals{Calories: 1800, Protein: 40, Carbs: 180, Fat: 80}
	recs := RuleBasedRecommendations(totals, standardGoal(), 2)

	joined := ""
	for _, r := range recs {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "Protein intake is below half")
	assert.Contains(t, joined, "Fat intake is above target")
}

func TestRecommendationsNoGoalsConfigured(t *testing.T) {
	totals := MacroTotals{Calories: 1500}
	recs := RuleBasedRecommendations(totals, models.UserGoals{}, 2)
	assert.Empty(t, recs)
}

func TestRecommendationsAreDeterministic(t *testing.T) {
	totals := MacroTotals{Calories: 1200, Protein: 30, Carbs: 260, Fat: 70}
	first := RuleBasedRecommendations(totals, standardGoal(), 2)
	second := RuleBasedRecommendations(totals, standardGoal(), 2)
	assert.Equal(t, first, second)
}
