package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealItemInput struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
}

type MealInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Items       []MealItemInput `json:"items"`
}

// Compute sums the foods' stored totals scaled by each entry's quantity
// and unit. It reads the totals as last saved — a meal never recomputes
// through to ingredients, so an ingredient edit shows up here only after
// the food itself is saved again.
func (s *MealService) Compute(items []MealItemInput) (models.Nutrients, error) {
	if len(items) == 0 {
		return models.Nutrients{}, ErrEmptyComposition
	}
	entries := make([]component, 0, len(items))
	for _, it := range items {
		var food models.Food
		if err := s.db.First(&food, it.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Nutrients{}, ErrSourceNotFound
			}
			return models.Nutrients{}, err
		}
		entries = append(entries, component{
			values:    food.Nutrients,
			refAmount: food.ServingAmount,
			refUnit:   food.ServingUnit,
			quantity:  it.Quantity,
			unit:      it.Unit,
		})
	}
	return composeNutrients(entries)
}

func (s *MealService) AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	totals, err := s.Compute(in.Items)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Nutrients:   totals,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &models.MealItem{
				MealID:   meal.ID,
				FoodID:   it.FoodID,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(userID, meal.ID)
}

func (s *MealService) UpdateMeal(userID, mealID uint, in MealInput) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	totals, err := s.Compute(in.Items)
	if err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.Description = in.Description
	meal.Nutrients = totals

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&meal).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &models.MealItem{
				MealID:   meal.ID,
				FoodID:   it.FoodID,
				Quantity: it.Quantity,
				Unit:     it.Unit,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(userID, meal.ID)
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes the meal and its items. Consumption log entries that
// reference it are left alone: their snapshots and captured names are the
// historical record, the meal id just goes dangling.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("meal_id = ?", mealID).Delete(&models.MealItem{}).Error
	})
}
