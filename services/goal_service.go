package services

import (
	"errors"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"

	"gorm.io/gorm"
)

type GoalsInput struct {
	TargetCalories     float64 `json:"target_calories"`
	TargetProteinRatio float64 `json:"target_protein_ratio"` // percent 0-100
	TargetCarbsRatio   float64 `json:"target_carbs_ratio"`
	TargetFatRatio     float64 `json:"target_fat_ratio"`
	TargetWeightKg     float64 `json:"target_weight_kg"`
	GoalType           string  `json:"goal_type"`
}

// UpsertGoals writes the single goals row for the user (insert or update on
// user_id). A ratio sum away from 100 comes back as a warning string; it
// never blocks the save. Subscribers get a goals.updated event.
func UpsertGoals(userID uint, in GoalsInput) (string, error) {
	_, warning := validateGoalRatios(in)

	var goal models.UserGoals
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.UserGoals{UserID: userID}
	} else if err != nil {
		return "", err
	}

	goal.TargetCalories = in.TargetCalories
	goal.TargetProteinRatio = in.TargetProteinRatio
	goal.TargetCarbsRatio = in.TargetCarbsRatio
	goal.TargetFatRatio = in.TargetFatRatio
	goal.TargetWeightKg = in.TargetWeightKg
	if in.GoalType != "" {
		goal.GoalType = in.GoalType
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return "", err
	}

	EmitEvent(userID, "goals.updated", goal)
	return warning, nil
}

func validateGoalRatios(in GoalsInput) (bool, string) {
	return ValidateMacroRatios(in.TargetProteinRatio, in.TargetCarbsRatio, in.TargetFatRatio)
}

// GetGoals returns the stored goals, zero-valued when none exist yet.
func GetGoals(userID uint) (*models.UserGoals, error) {
	var goal models.UserGoals
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserGoals{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

// MacroProgress is one macro's target grams, observed grams and clamped percent.
type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Target   float64 `json:"target"`
	Percent  float64 `json:"percent"`
}

// GoalProgress is the full goals-vs-today picture for the dashboard.
type GoalProgress struct {
	Date              string                   `json:"date"`
	Totals            MacroTotals              `json:"totals"`
	Calories          MacroProgress            `json:"calories"`
	Macros            map[string]MacroProgress `json:"macros"`
	CaloriesRemaining float64                  `json:"calories_remaining"`
	WeightProgress    float64                  `json:"weight_progress"`
}

// GetGoalsAndProgress aggregates today's meals against the stored goals.
func GetGoalsAndProgress(userID uint) (*models.UserGoals, *GoalProgress, error) {
	return GetGoalsAndProgressByDate(userID, time.Now())
}

func GetGoalsAndProgressByDate(userID uint, date time.Time) (*models.UserGoals, *GoalProgress, error) {
	goal, err := GetGoals(userID)
	if err != nil {
		return nil, nil, err
	}

	start := dayStart(date)
	mealSvc := NewMealService()
	meals, err := mealSvc.ListMealsByDateRange(userID, start, start.Add(24*time.Hour))
	if err != nil {
		return goal, nil, err
	}

	totals := DailyTotals(meals, date)

	proteinTarget := MacroGramTarget(goal.TargetProteinRatio, goal.TargetCalories, KcalPerGramProtein)
	carbsTarget := MacroGramTarget(goal.TargetCarbsRatio, goal.TargetCalories, KcalPerGramCarbs)
	fatTarget := MacroGramTarget(goal.TargetFatRatio, goal.TargetCalories, KcalPerGramFat)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return goal, nil, err
	}

	progress := &GoalProgress{
		Date:   start.Format("2006-01-02"),
		Totals: totals,
		Calories: MacroProgress{
			Consumed: totals.Calories,
			Target:   goal.TargetCalories,
			Percent:  ProgressPercent(totals.Calories, goal.TargetCalories),
		},
		Macros: map[string]MacroProgress{
			"protein": {Consumed: totals.Protein, Target: proteinTarget, Percent: ProgressPercent(totals.Protein, proteinTarget)},
			"carbs":   {Consumed: totals.Carbs, Target: carbsTarget, Percent: ProgressPercent(totals.Carbs, carbsTarget)},
			"fat":     {Consumed: totals.Fat, Target: fatTarget, Percent: ProgressPercent(totals.Fat, fatTarget)},
		},
		CaloriesRemaining: CaloriesRemaining(goal.TargetCalories, totals.Calories),
		WeightProgress:    WeightProgressPercent(goal.GoalType, user.WeightKg, goal.TargetWeightKg),
	}

	return goal, progress, nil
}

// DailyHistory returns one totals record per calendar day for the last n days,
// newest first, for chart views.
type DayTotals struct {
	Date   string      `json:"date"`
	Totals MacroTotals `json:"totals"`
}

func DailyHistory(userID uint, days int) ([]DayTotals, error) {
	if days <= 0 {
		days = 7
	}
	end := dayStart(time.Now()).Add(24 * time.Hour)
	from := end.AddDate(0, 0, -days)

	mealSvc := NewMealService()
	meals, err := mealSvc.ListMealsByDateRange(userID, from, end)
	if err != nil {
		return nil, err
	}

	out := make([]DayTotals, 0, days)
	for i := 0; i < days; i++ {
		d := dayStart(time.Now()).AddDate(0, 0, -i)
		out = append(out, DayTotals{
			Date:   d.Format("2006-01-02"),
			Totals: DailyTotals(meals, d),
		})
	}
	return out, nil
}
