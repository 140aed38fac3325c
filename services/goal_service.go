package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalInput struct {
	Calories float64  `json:"calories" binding:"required"`
	Protein  float64  `json:"protein" binding:"required"`
	Carbs    float64  `json:"carbs" binding:"required"`
	Fat      float64  `json:"fat" binding:"required"`
	Sugar    *float64 `json:"sugar"`
	Fiber    *float64 `json:"fiber"`
}

// DefaultGoals are served to users who never set targets. Values follow
// the FDA adult daily reference intake; sugar and fiber stay unset.
func DefaultGoals(userID uint) models.DailyGoal {
	return models.DailyGoal{
		UserID:   userID,
		Calories: 2000,
		Protein:  50,
		Carbs:    275,
		Fat:      78,
	}
}

func (s *GoalService) Get(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			def := DefaultGoals(userID)
			return &def, nil
		}
		return nil, err
	}
	return &goal, nil
}

// Upsert creates or updates the user's single goal record in place.
func (s *GoalService) Upsert(userID uint, in GoalInput) (*models.DailyGoal, error) {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
	} {
		if f.value <= 0 {
			return nil, validationf("%s goal must be positive, got %v", f.name, f.value)
		}
	}
	if in.Sugar != nil && *in.Sugar <= 0 {
		return nil, validationf("sugar goal must be positive, got %v", *in.Sugar)
	}
	if in.Fiber != nil && *in.Fiber <= 0 {
		return nil, validationf("fiber goal must be positive, got %v", *in.Fiber)
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: in.Calories,
			Protein:  in.Protein,
			Carbs:    in.Carbs,
			Fat:      in.Fat,
			Sugar:    in.Sugar,
			Fiber:    in.Fiber,
		}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = in.Calories
	goal.Protein = in.Protein
	goal.Carbs = in.Carbs
	goal.Fat = in.Fat
	goal.Sugar = in.Sugar
	goal.Fiber = in.Fiber
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
