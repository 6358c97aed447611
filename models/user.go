package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Birthday  time.Time
	Sex       string

	HeightCm float64
	WeightKg float64

	HealthConditions string // comma-separated
	FitnessGoals     string // comma-separated
	ProfilePicture   string

	Onboarded bool
	Disabled  bool

	MFAEnabled bool
	MFACode    string

	ResetToken    string
	ResetTokenExp time.Time
}
