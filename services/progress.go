package services

import (
	"fmt"
	"math"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/models"
)

// kcal per gram of each macronutrient.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramCarbs   = 4.0
	KcalPerGramFat     = 9.0
)

// MacroTotals is one day's consumed totals.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MealTotals sums per-serving values multiplied by quantity across items.
func MealTotals(items []models.FoodItem) MacroTotals {
	var t MacroTotals
	for _, it := range items {
		t.Calories += it.Calories * it.Quantity
		t.Protein += it.Protein * it.Quantity
		t.Carbs += it.Carbs * it.Quantity
		t.Fat += it.Fat * it.Quantity
	}
	return t
}

// DailyTotals sums meal totals for logs whose meal_date falls on the same
// calendar date as the reference date. Only the year-month-day portion is
// compared; callers must store and pass times in a consistent location or
// results will skew across zone boundaries.
func DailyTotals(logs []models.MealLog, date time.Time) MacroTotals {
	var t MacroTotals
	for _, m := range logs {
		if !sameCalendarDay(m.MealDate, date) {
			continue
		}
		t.Calories += m.TotalCalories
		t.Protein += m.TotalProtein
		t.Carbs += m.TotalCarbs
		t.Fat += m.TotalFat
	}
	return t
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MacroGramTarget converts a macro ratio (percent of daily calories) into a
// gram target. Zero or negative inputs yield 0, never NaN.
func MacroGramTarget(ratioPercent, targetCalories, kcalPerGram float64) float64 {
	if ratioPercent <= 0 || targetCalories <= 0 || kcalPerGram <= 0 {
		return 0
	}
	return round2((ratioPercent / 100.0) * targetCalories / kcalPerGram)
}

// ProgressPercent is observed/target as a percentage, clamped to [0,100].
// The clamp applies to every consumer (bars and text alike).
func ProgressPercent(observed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clampPct(round2((observed / target) * 100.0))
}

// assumedJourneyKg stands in for the starting weight, which is not
// persisted: the journey is assumed to begin 10 kg away from the target
// unless the current weight is already further out than that.
const assumedJourneyKg = 10.0

// WeightProgressPercent approximates progress toward a weight goal. With no
// recorded starting weight the start is reconstructed from the target and the
// assumed journey length, so reaching the target reports 100% and points in
// between report proportionally.
func WeightProgressPercent(goalType string, currentKg, targetKg float64) float64 {
	if currentKg <= 0 || targetKg <= 0 {
		return 0
	}
	switch goalType {
	case "lose_weight":
		start := math.Max(currentKg, targetKg+assumedJourneyKg)
		return weightRatio(start-currentKg, start-targetKg)
	case "gain_weight":
		start := math.Min(currentKg, targetKg-assumedJourneyKg)
		return weightRatio(currentKg-start, targetKg-start)
	default: // maintain_weight has no meaningful progress axis
		return 0
	}
}

func weightRatio(done, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return clampPct(round2((done / span) * 100.0))
}

// CaloriesRemaining goes negative once intake passes the target; the sign
// carries the overshoot that clamped progress percentages hide.
func CaloriesRemaining(target, consumed float64) float64 {
	return round2(target - consumed)
}

// ValidateMacroRatios checks that the three ratios sum to 100 (±0.5 for
// rounding slack). A mismatch is a warning, never a hard rejection.
func ValidateMacroRatios(protein, carbs, fat float64) (bool, string) {
	sum := protein + carbs + fat
	if math.Abs(sum-100.0) <= 0.5 {
		return true, ""
	}
	return false, fmt.Sprintf("macro ratios sum to %.0f%%, expected 100%%", sum)
}

func clampPct(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
