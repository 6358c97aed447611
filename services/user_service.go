package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"
	"github.com/dhaval-dalia/personal-diet-tracker-master/utils"
)

type ProfileInput struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Birthday         string  `json:"birthday"` // sent as YYYY-MM-DD
	Sex              string  `json:"sex"`
	Height           float64 `json:"height"` // cm
	Weight           float64 `json:"weight"` // kg
	HealthConditions string  `json:"health_conditions"`
	FitnessGoals     string  `json:"fitness_goals"`
	ProfilePicture   string  `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"birthday":          user.Birthday.Format("2006-01-02"),
		"age":               age,
		"sex":               user.Sex,
		"height":            user.HeightCm,
		"weight":            user.WeightKg,
		"health_conditions": user.HealthConditions,
		"fitness_goals":     user.FitnessGoals,
		"profile_picture":   user.ProfilePicture,
		"mfa_enabled":       user.MFAEnabled,
		"onboarded":         user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}
	if input.Height > 0 {
		user.HeightCm = input.Height
	}
	if input.Weight > 0 {
		user.WeightKg = input.Weight
	}
	if input.HealthConditions != "" {
		user.HealthConditions = input.HealthConditions
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// DeleteUser soft-disables the account; rows are kept for history.
func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

// CompleteUserOnboarding applies the questionnaire answers and flips the
// onboarded flag. Goal-type answers also seed an initial UserGoals row so the
// dashboard has something to show before the user visits the goals form.
func CompleteUserOnboarding(
	email string,
	birthday time.Time,
	sex string,
	height, weight, targetWeight float64,
	goalType string,
	healthConditions, fitnessGoals []string,
	profilePictureBase64 string,
) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	user.Birthday = birthday
	user.Sex = sex
	user.HeightCm = height
	user.WeightKg = weight
	user.HealthConditions = strings.Join(healthConditions, ",")
	user.FitnessGoals = strings.Join(fitnessGoals, ",")

	if profilePictureBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(profilePictureBase64, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload profile picture: %w", err)
		}
		user.ProfilePicture = url
	}

	user.Onboarded = true

	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	if goalType != "" {
		_, err := UpsertGoals(user.ID, GoalsInput{
			TargetCalories:     defaultCaloriesFor(goalType),
			TargetProteinRatio: 30,
			TargetCarbsRatio:   40,
			TargetFatRatio:     30,
			TargetWeightKg:     targetWeight,
			GoalType:           goalType,
		})
		return err
	}
	return nil
}

func defaultCaloriesFor(goalType string) float64 {
	switch goalType {
	case "lose_weight":
		return 1800
	case "gain_weight":
		return 2500
	default:
		return 2000
	}
}
