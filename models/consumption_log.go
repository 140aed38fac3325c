package models

import "gorm.io/gorm"

// ConsumptionLog captures what a user actually ate on a given date. The
// nutrient fields are an immutable snapshot taken at logging time: editing
// or deleting the source meal afterwards never changes them. MealID is
// nullable — manual entries have none, and deleting a meal leaves old
// entries dangling with their captured name intact.
type ConsumptionLog struct {
	gorm.Model
	UserID uint  `gorm:"index;not null" json:"user_id"`
	MealID *uint `json:"meal_id,omitempty"`

	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `gorm:"default:1" json:"quantity"`

	// Calendar date in YYYY-MM-DD form. Stored as a string so bucketing is
	// exactly the date the user picked, independent of timezone.
	Date string `gorm:"type:varchar(10);index;not null" json:"date"`

	Nutrients `gorm:"embedded" json:"nutrients"`

	Notes string `json:"notes,omitempty"`
}
