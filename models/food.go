package models

import "gorm.io/gorm"

// Food composes one or more ingredients. A "simple" food has exactly one
// item; a composite has several. The embedded nutrient totals are computed
// by the composer at save time and persisted — they are a cache of the
// weighted sum at last save, not a live view of the ingredients.
type Food struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Brand       string `json:"brand,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `gorm:"index" json:"category"`

	// What the stored totals represent, default one serving.
	ServingAmount float64 `gorm:"default:1" json:"serving_amount"`
	ServingUnit   string  `gorm:"default:serving" json:"serving_unit"`

	Nutrients `gorm:"embedded" json:"nutrients"`

	Items     []FoodItem `json:"items"`
	CreatedBy uint       `gorm:"index" json:"created_by"`
}

// FoodItem is one (ingredient, quantity, unit) entry of a food's
// composition list.
type FoodItem struct {
	gorm.Model
	FoodID       uint    `gorm:"index;not null" json:"food_id"`
	IngredientID uint    `gorm:"not null" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Unit         string  `gorm:"not null" json:"unit"`
}
