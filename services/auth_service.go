package services

import (
	"errors"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/models"
	"github.com/joshegilbert/nutriz/utils"
)

func RegisterUser(email, password, fullName, role string) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, errors.New("user already exists")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "nutritionist"
	}
	user := &models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
		Role:     role,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
