package models

import (
	"gorm.io/gorm"
)

type UserPreferences struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	DietaryRestrictions string // comma-separated
	Allergies           string // comma-separated
	Units               string `gorm:"size:10;default:metric"` // "metric"|"imperial"

	MealReminders bool `gorm:"default:true"`
	WeeklyReports bool `gorm:"default:true"`
}
