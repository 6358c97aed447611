package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	meals *services.MealService
	recs  *services.RecService
}

func NewDashboardController(meals *services.MealService, recs *services.RecService) *DashboardController {
	return &DashboardController{meals: meals, recs: recs}
}

// GetDashboard bundles everything the overview screen renders in one call:
// today's totals and progress, rule-based recommendations and recent meals.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, progress, err := services.GetGoalsAndProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	todays, err := dc.meals.TodaysMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recent, err := dc.meals.ListRecentMeals(userID, 3)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recommendations := services.RuleBasedRecommendations(
		services.DailyTotals(todays, time.Now()), *goal, len(todays),
	)

	c.JSON(http.StatusOK, gin.H{
		"goals":           goal,
		"progress":        progress,
		"recommendations": recommendations,
		"recent_meals":    recent,
	})
}

func (dc *DashboardController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	history, err := services.DailyHistory(userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": history})
}

// GetAIRecommendations asks the workflow engine; on failure the local rule
// set answers instead of surfacing the remote error.
func (dc *DashboardController) GetAIRecommendations(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, _, err := services.GetGoalsAndProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	todays, err := dc.meals.TodaysMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recs := dc.recs.Get(userID, services.DailyTotals(todays, time.Now()), *goal, todays)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
