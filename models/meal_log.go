package models

import (
	"time"

	"gorm.io/gorm"
)

// MealLog is one logged meal. Totals are computed once at log time from the
// items (per-serving value × quantity) and never recomputed afterwards.
type MealLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	MealType string    `gorm:"size:20"` // "breakfast"|"lunch"|"dinner"|"snack"
	MealDate time.Time `gorm:"index;not null"`
	MealTime string    `gorm:"size:5"` // "HH:MM"

	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64

	Source string `gorm:"size:20"` // "search"|"barcode"|"quick_add"
	Items  []FoodItem
}

// FoodItem keeps the unmultiplied per-serving values; quantity is applied
// only when the parent meal's totals are computed.
type FoodItem struct {
	gorm.Model
	MealLogID uint `gorm:"index;not null"`

	Name     string `gorm:"not null"`
	Calories float64 // per serving
	Protein  float64
	Carbs    float64
	Fat      float64
	Quantity float64
	Unit     string `gorm:"size:20"` // e.g. "g", "serving"
	Barcode  string `gorm:"size:32"`
}
