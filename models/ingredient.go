package models

import "gorm.io/gorm"

// Ingredient is the atomic nutrition source. Nutrient values are defined
// per the reference serving (ServingAmount of ServingUnit). The catalog is
// shared across users; CreatedBy records who added the entry.
type Ingredient struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `gorm:"index" json:"category"`

	ServingAmount float64 `gorm:"not null" json:"serving_amount"` // must be > 0
	ServingUnit   string  `gorm:"not null" json:"serving_unit"`   // e.g. "g", "ml", "piece"

	Nutrients `gorm:"embedded" json:"nutrients"`

	CreatedBy uint `gorm:"index" json:"created_by"`
}
