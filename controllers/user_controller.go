package controllers

import (
	"net/http"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(email, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

type OnboardingInput struct {
	Birthday         string   `json:"birthday" binding:"required"` // YYYY-MM-DD
	Sex              string   `json:"sex"`
	Height           float64  `json:"height" binding:"required,gt=0"`
	Weight           float64  `json:"weight" binding:"required,gt=0"`
	TargetWeight     float64  `json:"target_weight"`
	GoalType         string   `json:"goal_type" binding:"omitempty,oneof=lose_weight gain_weight maintain_weight"`
	HealthConditions []string `json:"health_conditions"`
	FitnessGoals     []string `json:"fitness_goals"`
	ProfilePicture   string   `json:"profile_picture"`
}

func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")

	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthday format. Use YYYY-MM-DD"})
		return
	}

	err = services.CompleteUserOnboarding(
		email,
		birthday,
		input.Sex,
		input.Height,
		input.Weight,
		input.TargetWeight,
		input.GoalType,
		input.HealthConditions,
		input.FitnessGoals,
		input.ProfilePicture,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}

func DeleteAccount(c *gin.Context) {
	email := c.GetString("email")

	if err := services.DeleteUser(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
