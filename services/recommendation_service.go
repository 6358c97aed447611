package services

import (
	"fmt"
	"log"

	"github.com/dhaval-dalia/personal-diet-tracker-master/models"
)

type RecService struct {
	hook *WebhookService
}

func NewRecService(hook *WebhookService) *RecService {
	return &RecService{hook: hook}
}

// RuleBasedRecommendations is a deterministic threshold chain over today's
// totals vs. goals. It needs no external call and always returns in order.
func RuleBasedRecommendations(totals MacroTotals, goal models.UserGoals, mealCount int) []string {
	var recs []string

	if mealCount == 0 {
		recs = append(recs, "You haven't logged any meals today. Log your first meal to start tracking.")
		return recs
	}

	if goal.TargetCalories > 0 {
		deficit := goal.TargetCalories - totals.Calories
		if deficit > 500 {
			recs = append(recs, fmt.Sprintf("You're %.0f kcal under your daily target. Consider a healthy snack.", deficit))
		}
		if totals.Calories > goal.TargetCalories {
			recs = append(recs, "You've exceeded your calorie target for today. Go lighter on the next meal.")
		}

		proteinTarget := MacroGramTarget(goal.TargetProteinRatio, goal.TargetCalories, KcalPerGramProtein)
		if proteinTarget > 0 && totals.Protein < proteinTarget*0.5 {
			recs = append(recs, "Protein intake is below half of your target. Add a protein source like eggs, fish or legumes.")
		}

		fatTarget := MacroGramTarget(goal.TargetFatRatio, goal.TargetCalories, KcalPerGramFat)
		if fatTarget > 0 && totals.Fat > fatTarget {
			recs = append(recs, "Fat intake is above target. Prefer a lighter dinner today.")
		}

		carbsTarget := MacroGramTarget(goal.TargetCarbsRatio, goal.TargetCalories, KcalPerGramCarbs)
		if carbsTarget > 0 && totals.Carbs > carbsTarget*1.25 {
			recs = append(recs, "Carbohydrates are well above target. Swap refined carbs for vegetables or whole grains.")
		}
	}

	return recs
}

// Get prefers AI recommendations from the workflow engine and falls back to
// the local rule set when the remote call fails.
func (r *RecService) Get(userID uint, totals MacroTotals, goal models.UserGoals, meals []models.MealLog) []string {
	if r.hook != nil {
		recs, err := r.hook.RequestRecommendations(userID, meals)
		if err == nil && len(recs) > 0 {
			return recs
		}
		if err != nil {
			log.Printf("remote recommendations failed, using rules: %v", err)
		}
	}
	return RuleBasedRecommendations(totals, goal, len(meals))
}
