package services

import (
	"testing"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/models"

	"github.com/stretchr/testify/assert"
)

func TestDailyTotalsEmpty(t *testing.T) {
	got := DailyTotals(nil, time.Now())
	assert.Equal(t, MacroTotals{}, got)

	got = DailyTotals([]models.MealLog{}, time.Now())
	assert.Equal(t, MacroTotals{Calories: 0, Protein: 0, Carbs: 0, Fat: 0}, got)
}

func TestDailyTotalsMatchesReferenceDateOnly(t *testing.T) {
	today := time.Date(2025, 3, 14, 12, 30, 0, 0, time.Local)
	logs := []models.MealLog{
		{
			MealDate:      today,
			TotalCalories: 500,
			TotalProtein:  30,
			TotalCarbs:    50,
			TotalFat:      20,
		},
	}

	got := DailyTotals(logs, today)
	assert.Equal(t, MacroTotals{Calories: 500, Protein: 30, Carbs: 50, Fat: 20}, got)

	// same day, different time-of-day still matches
	got = DailyTotals(logs, time.Date(2025, 3, 14, 23, 59, 0, 0, time.Local))
	assert.Equal(t, 500.0, got.Calories)

	// different date matches nothing
	got = DailyTotals(logs, today.AddDate(0, 0, 1))
	assert.Equal(t, MacroTotals{}, got)
}

func TestDailyTotalsSumsAcrossMeals(t *testing.T) {
	day := time.Date(2025, 3, 14, 8, 0, 0, 0, time.Local)
	logs := []models.MealLog{
		{MealDate: day, TotalCalories: 400, TotalProtein: 20, TotalCarbs: 40, TotalFat: 15},
		{MealDate: day.Add(5 * time.Hour), TotalCalories: 600, TotalProtein: 35, TotalCarbs: 60, TotalFat: 25},
		{MealDate: day.AddDate(0, 0, -1), TotalCalories: 999, TotalProtein: 99, TotalCarbs: 99, TotalFat: 99},
	}

	got := DailyTotals(logs, day)
	assert.Equal(t, MacroTotals{Calories: 1000, Protein: 55, Carbs: 100, Fat: 40}, got)
}

func TestMealTotalsMultipliesQuantity(t *testing.T) {
	items := []models.FoodItem{
		{Name: "A", Calories: 120, Protein: 8, Carbs: 10, Fat: 4, Quantity: 2},
		{Name: "B", Calories: 250, Protein: 12, Carbs: 30, Fat: 9, Quantity: 1},
	}

	got := MealTotals(items)
	assert.Equal(t, 120.0*2+250.0, got.Calories)
	assert.Equal(t, 8.0*2+12.0, got.Protein)
	assert.Equal(t, 10.0*2+30.0, got.Carbs)
	assert.Equal(t, 4.0*2+9.0, got.Fat)

	// the items themselves keep per-serving values
	assert.Equal(t, 120.0, items[0].Calories)
}

func TestMacroGramTarget(t *testing.T) {
	// 30% of 2000 kcal at 4 kcal/g = 150 g
	assert.Equal(t, 150.0, MacroGramTarget(30, 2000, KcalPerGramProtein))
	// fat uses 9 kcal/g
	assert.InDelta(t, 66.67, MacroGramTarget(30, 2000, KcalPerGramFat), 0.01)

	// degenerate inputs yield 0, never NaN
	assert.Equal(t, 0.0, MacroGramTarget(30, 0, 4))
	assert.Equal(t, 0.0, MacroGramTarget(0, 2000, 4))
	assert.Equal(t, 0.0, MacroGramTarget(30, 2000, 0))
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 100.0, ProgressPercent(150, 150))
	assert.Equal(t, 0.0, ProgressPercent(0, 150))
	assert.Equal(t, 50.0, ProgressPercent(75, 150))

	// zero target never divides
	assert.Equal(t, 0.0, ProgressPercent(100, 0))

	// overshoot clamps to 100
	assert.Equal(t, 100.0, ProgressPercent(300, 150))
}

func TestWeightProgressPercent(t *testing.T) {
	// lose: 80 -> 70 journey, midway at 75, done at 70
	assert.Equal(t, 0.0, WeightProgressPercent("lose_weight", 80, 70))
	assert.Equal(t, 50.0, WeightProgressPercent("lose_weight", 75, 70))
	assert.Equal(t, 100.0, WeightProgressPercent("lose_weight", 70, 70))

	// further out than the assumed journey still reads as just started
	assert.Equal(t, 0.0, WeightProgressPercent("lose_weight", 85, 70))

	// past the target clamps at 100
	assert.Equal(t, 100.0, WeightProgressPercent("lose_weight", 68, 70))

	// gain: symmetric
	assert.Equal(t, 0.0, WeightProgressPercent("gain_weight", 60, 70))
	assert.Equal(t, 50.0, WeightProgressPercent("gain_weight", 65, 70))
	assert.Equal(t, 100.0, WeightProgressPercent("gain_weight", 70, 70))

	// maintain has no progress axis
	assert.Equal(t, 0.0, WeightProgressPercent("maintain_weight", 70, 70))

	// degenerate inputs
	assert.Equal(t, 0.0, WeightProgressPercent("lose_weight", 0, 70))
	assert.Equal(t, 0.0, WeightProgressPercent("lose_weight", 70, 0))
}

func TestCaloriesRemainingCarriesOvershoot(t *testing.T) {
	assert.Equal(t, 500.0, CaloriesRemaining(2000, 1500))
	assert.Equal(t, 0.0, CaloriesRemaining(2000, 2000))

	// past the target the remainder goes negative rather than clamping
	assert.Equal(t, -300.0, CaloriesRemaining(2000, 2300))
}

func TestValidateMacroRatios(t *testing.T) {
	ok, warning := ValidateMacroRatios(30, 40, 30)
	assert.True(t, ok)
	assert.Empty(t, warning)

	ok, warning = ValidateMacroRatios(30, 40, 40)
	assert.False(t, ok)
	assert.Contains(t, warning, "110")
}
