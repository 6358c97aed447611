package services

import (
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"
)

type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

type FoodItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"` // per serving
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Barcode  string  `json:"barcode"`
}

func (s *MealService) LogMeal(
	userID uint,
	mealType string,
	mealDate time.Time,
	mealTime string,
	source string,
	items []FoodItemRequest,
) (*models.MealLog, error) {
	foodItems := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		foodItems = append(foodItems, models.FoodItem{
			Name:     it.Name,
			Calories: it.Calories,
			Protein:  it.Protein,
			Carbs:    it.Carbs,
			Fat:      it.Fat,
			Quantity: qty,
			Unit:     it.Unit,
			Barcode:  it.Barcode,
		})
	}

	totals := MealTotals(foodItems)

	meal := &models.MealLog{
		UserID:        userID,
		MealType:      mealType,
		MealDate:      mealDate,
		MealTime:      mealTime,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFat:      totals.Fat,
		Source:        source,
		Items:         foodItems,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	// reload with items
	var populated models.MealLog
	if err := config.DB.Preload("Items").
		First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// QuickAdd logs a single ad-hoc entry; the caller supplies totals directly.
func (s *MealService) QuickAdd(
	userID uint,
	mealType string,
	mealDate time.Time,
	name string,
	calories, protein, carbs, fat float64,
) (*models.MealLog, error) {
	return s.LogMeal(userID, mealType, mealDate, mealDate.Format("15:04"), "quick_add", []FoodItemRequest{{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Quantity: 1,
		Unit:     "serving",
	}})
}

func (s *MealService) ListMeals(userID uint) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("meal_date DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.MealLog, error) {
	var meal models.MealLog
	err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	if err := config.DB.
		Where("meal_log_id = ?", mealID).
		Delete(&models.FoodItem{}).Error; err != nil {
		return err
	}
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{}).Error
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := config.DB.
		Preload("Items").
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, from, to).
		Order("meal_date DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.MealLog
	err := config.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("meal_date DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// TodaysMeals fetches the current local day's logs.
func (s *MealService) TodaysMeals(userID uint) ([]models.MealLog, error) {
	start := dayStart(time.Now())
	return s.ListMealsByDateRange(userID, start, start.Add(24*time.Hour))
}
