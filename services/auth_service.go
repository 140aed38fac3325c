package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
	"github.com/durcevicjuraj/calorie-tracker-web/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	return s.db.Create(&user).Error
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}
	return utils.GenerateJWT(user.ID)
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(userID uint, fullName string) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
