package services

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Food{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealItem{},
		&models.ConsumptionLog{},
		&models.DailyGoal{},
		&models.DailyHistory{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func createIngredient(t *testing.T, svc *IngredientService, in IngredientInput) *models.Ingredient {
	t.Helper()
	ing, err := svc.Create(1, in)
	if err != nil {
		t.Fatalf("failed to create ingredient %q: %v", in.Name, err)
	}
	return ing
}

// chickenBreast is 165 kcal / 31 g protein per 100 g.
func chickenBreast() IngredientInput {
	return IngredientInput{
		Name:          "Chicken Breast",
		Category:      "meat",
		ServingAmount: 100,
		ServingUnit:   "g",
		Calories:      165,
		Protein:       31,
	}
}
