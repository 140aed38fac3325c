package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type IngredientInput struct {
	Name          string   `json:"name" binding:"required"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	ServingAmount float64  `json:"serving_amount" binding:"required"`
	ServingUnit   string   `json:"serving_unit" binding:"required"`
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbs         float64  `json:"carbs"`
	Fat           float64  `json:"fat"`
	Sugar         *float64 `json:"sugar"`
	Fiber         *float64 `json:"fiber"`
}

func (in *IngredientInput) validate() error {
	if in.ServingAmount <= 0 {
		return validationf("serving amount must be positive, got %v", in.ServingAmount)
	}
	if in.ServingUnit == "" {
		return validationf("serving unit is required")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", in.Calories},
		{"protein", in.Protein},
		{"carbs", in.Carbs},
		{"fat", in.Fat},
	} {
		if f.value < 0 {
			return validationf("%s must not be negative, got %v", f.name, f.value)
		}
	}
	if in.Sugar != nil && *in.Sugar < 0 {
		return validationf("sugar must not be negative, got %v", *in.Sugar)
	}
	if in.Fiber != nil && *in.Fiber < 0 {
		return validationf("fiber must not be negative, got %v", *in.Fiber)
	}
	return nil
}

func (in *IngredientInput) nutrients() models.Nutrients {
	return models.Nutrients{
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Sugar:    in.Sugar,
		Fiber:    in.Fiber,
	}
}

func (s *IngredientService) Create(userID uint, in IngredientInput) (*models.Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ing := &models.Ingredient{
		Name:          in.Name,
		Brand:         in.Brand,
		Category:      in.Category,
		ServingAmount: in.ServingAmount,
		ServingUnit:   in.ServingUnit,
		Nutrients:     in.nutrients(),
		CreatedBy:     userID,
	}
	if err := s.db.Create(ing).Error; err != nil {
		return nil, err
	}
	return ing, nil
}

// Update replaces the ingredient's fields. Foods computed from the old
// values keep their stored totals until they are saved again.
func (s *IngredientService) Update(id uint, in IngredientInput) (*models.Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var ing models.Ingredient
	if err := s.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ing.Name = in.Name
	ing.Brand = in.Brand
	ing.Category = in.Category
	ing.ServingAmount = in.ServingAmount
	ing.ServingUnit = in.ServingUnit
	ing.Nutrients = in.nutrients()
	if err := s.db.Save(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := s.db.First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientService) List() ([]models.Ingredient, error) {
	var out []models.Ingredient
	err := s.db.Order("name ASC").Find(&out).Error
	return out, err
}

func (s *IngredientService) Delete(id uint) error {
	res := s.db.Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
