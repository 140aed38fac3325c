package services

import (
	"errors"
	"testing"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

func TestFoodSimplePassthrough(t *testing.T) {
	db := openTestDB(t)
	ingredients := NewIngredientService(db)
	foods := NewFoodService(db)

	ing := createIngredient(t, ingredients, chickenBreast())

	// A simple food at the ingredient's own reference serving carries the
	// ingredient's values unchanged.
	food, err := foods.Create(1, FoodInput{
		Name:  "Plain Chicken",
		Items: []FoodItemInput{{IngredientID: ing.ID, Quantity: 100, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("failed to create food: %v", err)
	}
	if !almostEqual(food.Calories, 165) || !almostEqual(food.Protein, 31) {
		t.Errorf("expected 165 kcal / 31 g protein, got %v / %v", food.Calories, food.Protein)
	}
	if food.ServingAmount != 1 || food.ServingUnit != "serving" {
		t.Errorf("expected default reference serving, got %v %s", food.ServingAmount, food.ServingUnit)
	}
}

func TestFoodScaledSimple(t *testing.T) {
	db := openTestDB(t)
	ingredients := NewIngredientService(db)
	foods := NewFoodService(db)

	ing := createIngredient(t, ingredients, chickenBreast())

	food, err := foods.Create(1, FoodInput{
		Name:  "Grilled Chicken",
		Items: []FoodItemInput{{IngredientID: ing.ID, Quantity: 150, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("failed to create food: %v", err)
	}
	if !almostEqual(food.Calories, 247.5) {
		t.Errorf("expected 247.5 kcal, got %v", food.Calories)
	}
	if !almostEqual(food.Protein, 46.5) {
		t.Errorf("expected 46.5 g protein, got %v", food.Protein)
	}
}

func TestFoodComposite(t *testing.T) {
	db := openTestDB(t)
	ingredients := NewIngredientService(db)
	foods := NewFoodService(db)

	chicken := createIngredient(t, ingredients, chickenBreast())
	rice := createIngredient(t, ingredients, IngredientInput{
		Name:          "White Rice",
		ServingAmount: 100,
		ServingUnit:   "g",
		Calories:      130,
		Protein:       2.7,
		Carbs:         28,
		Sugar:         models.Float64Ptr(0.1),
	})

	food, err := foods.Create(1, FoodInput{
		Name: "Chicken and Rice",
		Items: []FoodItemInput{
			{IngredientID: chicken.ID, Quantity: 150, Unit: "g"},
			{IngredientID: rice.ID, Quantity: 200, Unit: "g"},
		},
	})
	if err != nil {
		t.Fatalf("failed to create food: %v", err)
	}
	if !almostEqual(food.Calories, 165*1.5+130*2) {
		t.Errorf("calories: expected %v, got %v", 165*1.5+130*2, food.Calories)
	}
	if food.Sugar == nil || !almostEqual(*food.Sugar, 0.2) {
		t.Errorf("sugar: expected 0.2, got %v", food.Sugar)
	}
	if len(food.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(food.Items))
	}
}

func TestFoodEmptyComposition(t *testing.T) {
	db := openTestDB(t)
	foods := NewFoodService(db)

	if _, err := foods.Create(1, FoodInput{Name: "Nothing"}); !errors.Is(err, ErrEmptyComposition) {
		t.Fatalf("expected ErrEmptyComposition, got %v", err)
	}
}

func TestFoodSourceNotFound(t *testing.T) {
	db := openTestDB(t)
	foods := NewFoodService(db)

	_, err := foods.Create(1, FoodInput{
		Name:  "Ghost",
		Items: []FoodItemInput{{IngredientID: 999, Quantity: 100, Unit: "g"}},
	})
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestFoodTotalsAreCachedNotLive(t *testing.T) {
	db := openTestDB(t)
	ingredients := NewIngredientService(db)
	foods := NewFoodService(db)

	ing := createIngredient(t, ingredients, chickenBreast())
	food, err := foods.Create(1, FoodInput{
		Name:  "Grilled Chicken",
		Items: []FoodItemInput{{IngredientID: ing.ID, Quantity: 100, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("failed to create food: %v", err)
	}

	// Edit the ingredient. The food's stored totals must not move.
	edited := chickenBreast()
	edited.Calories = 500
	if _, err := ingredients.Update(ing.ID, edited); err != nil {
		t.Fatalf("failed to update ingredient: %v", err)
	}

	reread, err := foods.Get(food.ID)
	if err != nil {
		t.Fatalf("failed to re-read food: %v", err)
	}
	if !almostEqual(reread.Calories, 165) {
		t.Errorf("stored totals changed without a save: got %v", reread.Calories)
	}

	// A save of the food picks up the new ingredient values.
	updated, err := foods.Update(food.ID, FoodInput{
		Name:  "Grilled Chicken",
		Items: []FoodItemInput{{IngredientID: ing.ID, Quantity: 100, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("failed to update food: %v", err)
	}
	if !almostEqual(updated.Calories, 500) {
		t.Errorf("expected recomputed 500 kcal, got %v", updated.Calories)
	}
}
