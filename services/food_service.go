package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodItemInput struct {
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required"`
	Unit         string  `json:"unit" binding:"required"`
}

type FoodInput struct {
	Name          string          `json:"name" binding:"required"`
	Brand         string          `json:"brand"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	ServingAmount float64         `json:"serving_amount"`
	ServingUnit   string          `json:"serving_unit"`
	Items         []FoodItemInput `json:"items"`
}

// Compute runs the composer over the draft's ingredient entries. It does
// not persist anything; saving the result onto the food row happens in the
// same transaction as the save itself.
func (s *FoodService) Compute(items []FoodItemInput) (models.Nutrients, error) {
	if len(items) == 0 {
		return models.Nutrients{}, ErrEmptyComposition
	}
	entries := make([]component, 0, len(items))
	for _, it := range items {
		var ing models.Ingredient
		if err := s.db.First(&ing, it.IngredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Nutrients{}, ErrSourceNotFound
			}
			return models.Nutrients{}, err
		}
		entries = append(entries, component{
			values:    ing.Nutrients,
			refAmount: ing.ServingAmount,
			refUnit:   ing.ServingUnit,
			quantity:  it.Quantity,
			unit:      it.Unit,
		})
	}
	return composeNutrients(entries)
}

func (s *FoodService) Create(userID uint, in FoodInput) (*models.Food, error) {
	totals, err := s.Compute(in.Items)
	if err != nil {
		return nil, err
	}

	food := &models.Food{
		Name:          in.Name,
		Brand:         in.Brand,
		Description:   in.Description,
		Category:      in.Category,
		ServingAmount: in.ServingAmount,
		ServingUnit:   in.ServingUnit,
		Nutrients:     totals,
		CreatedBy:     userID,
	}
	if food.ServingAmount <= 0 {
		food.ServingAmount = 1
	}
	if food.ServingUnit == "" {
		food.ServingUnit = "serving"
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &models.FoodItem{
				FoodID:       food.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
				Unit:         it.Unit,
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
	return s.Get(food.ID)
}

// Update recomputes the totals from the new composition and replaces the
// item list. Meals built on this food keep their own stored totals until
// they are saved again.
func (s *FoodService) Update(foodID uint, in FoodInput) (*models.Food, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	totals, err := s.Compute(in.Items)
	if err != nil {
		return nil, err
	}

	food.Name = in.Name
	food.Brand = in.Brand
	food.Description = in.Description
	food.Category = in.Category
	if in.ServingAmount > 0 {
		food.ServingAmount = in.ServingAmount
	}
	if in.ServingUnit != "" {
		food.ServingUnit = in.ServingUnit
	}
	food.Nutrients = totals

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&food).Error; err != nil {
			return err
		}
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &models.FoodItem{
				FoodID:       food.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
				Unit:         it.Unit,
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
	return s.Get(food.ID)
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	var food models.Food
	if err := s.db.Preload("Items").First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List() ([]models.Food, error) {
	var out []models.Food
	err := s.db.Preload("Items").Order("name ASC").Find(&out).Error
	return out, err
}

func (s *FoodService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", id).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Food{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
