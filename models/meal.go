package models

import "gorm.io/gorm"

// Meal composes one or more foods. Totals follow the same cached-at-save
// contract as Food: each item is scaled against the food's stored totals,
// never recursively recomputed through to ingredients.
type Meal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`

	Nutrients `gorm:"embedded" json:"nutrients"`

	Items []MealItem `json:"items"`
}

// MealItem is one (food, quantity, unit) entry of a meal's composition list.
type MealItem struct {
	gorm.Model
	MealID   uint    `gorm:"index;not null" json:"meal_id"`
	FoodID   uint    `gorm:"not null" json:"food_id"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	Unit     string  `gorm:"not null" json:"unit"`
}
