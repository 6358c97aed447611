package services

import (
	"errors"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/models"
	"github.com/dhaval-dalia/personal-diet-tracker-master/utils"
)

func RegisterUser(email, password, firstName, lastName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Disabled:  false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

// AuthenticateUser verifies the credentials and returns the account. Disabled
// accounts and wrong passwords fail with the same error so callers can't tell
// them apart.
func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid email or password")
	}

	return &user, nil
}
