package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type LogMealInput struct {
	MealType string                     `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	MealDate time.Time                  `json:"meal_date" binding:"required"`
	MealTime string                     `json:"meal_time"`
	Source   string                     `json:"source" binding:"omitempty,oneof=search barcode quick_add"`
	Items    []services.FoodItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (mc *MealController) LogMeal(c *gin.Context) {
	var body LogMealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	source := body.Source
	if source == "" {
		source = "search"
	}
	mealTime := body.MealTime
	if mealTime == "" {
		mealTime = body.MealDate.Format("15:04")
	}

	meal, err := mc.meals.LogMeal(userID, body.MealType, body.MealDate, mealTime, source, body.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

type QuickAddInput struct {
	MealType string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories" binding:"required,gt=0"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (mc *MealController) QuickAdd(c *gin.Context) {
	var body QuickAddInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	meal, err := mc.meals.QuickAdd(userID, body.MealType, time.Now(), body.Name, body.Calories, body.Protein, body.Carbs, body.Fat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		meals, err := mc.meals.ListMealsByDateRange(userID, date, date.Add(24*time.Hour))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	meals, err := mc.meals.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.meals.GetMeal(userID, uint(mealID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.meals.DeleteMeal(userID, uint(mealID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (mc *MealController) RecentMeals(c *gin.Context) {
	userID := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))

	meals, err := mc.meals.ListRecentMeals(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}
