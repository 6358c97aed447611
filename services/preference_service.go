package services

import (
	"errors"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"

	"gorm.io/gorm"
)

type PreferencesInput struct {
	DietaryRestrictions string `json:"dietary_restrictions"`
	Allergies           string `json:"allergies"`
	Units               string `json:"units" binding:"omitempty,oneof=metric imperial"`
	MealReminders       *bool  `json:"meal_reminders"`
	WeeklyReports       *bool  `json:"weekly_reports"`
}

// GetPreferences returns stored preferences, falling back to defaults when
// the user has never saved any.
func GetPreferences(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := config.DB.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserPreferences{
				UserID:        userID,
				Units:         "metric",
				MealReminders: true,
				WeeklyReports: true,
			}, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// UpsertPreferences writes the single preferences row keyed on user_id and
// notifies realtime subscribers.
func UpsertPreferences(userID uint, in PreferencesInput) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := config.DB.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.UserPreferences{UserID: userID, Units: "metric", MealReminders: true, WeeklyReports: true}
	} else if err != nil {
		return nil, err
	}

	prefs.DietaryRestrictions = in.DietaryRestrictions
	prefs.Allergies = in.Allergies
	if in.Units != "" {
		prefs.Units = in.Units
	}
	if in.MealReminders != nil {
		prefs.MealReminders = *in.MealReminders
	}
	if in.WeeklyReports != nil {
		prefs.WeeklyReports = *in.WeeklyReports
	}

	if err := config.DB.Save(&prefs).Error; err != nil {
		return nil, err
	}

	EmitEvent(userID, "preferences.updated", prefs)
	return &prefs, nil
}
