package models

import (
	"gorm.io/gorm"
)

// UserGoals holds each user's nutrition and weight targets, one row per user.
// Macro ratios are always percentages in [0,100]; they are converted to gram
// targets against TargetCalories when progress is computed.
type UserGoals struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	TargetCalories     float64 // e.g. 2000 kcal
	TargetProteinRatio float64 // e.g. 30 (% of calories)
	TargetCarbsRatio   float64 // e.g. 40
	TargetFatRatio     float64 // e.g. 30

	TargetWeightKg float64
	GoalType       string `gorm:"size:20"` // "lose_weight"|"gain_weight"|"maintain_weight"
}
