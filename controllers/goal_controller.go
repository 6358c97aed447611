package controllers

import (
	"net/http"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, progress, err := services.GetGoalsAndProgress(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goal, "progress": progress})
}

func UpdateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.GoalsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	warning, err := services.UpsertGoals(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"message": "goals saved"}
	if warning != "" {
		resp["warning"] = warning
	}
	c.JSON(http.StatusOK, resp)
}

func GetGoalsByDate(c *gin.Context) {
	userID := c.GetUint("userID")

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, progress, err := services.GetGoalsAndProgressByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "goals": goal, "progress": progress})
}
