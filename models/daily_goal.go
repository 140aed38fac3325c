package models

import "gorm.io/gorm"

// DailyGoal holds a user's current nutrient targets. At most one row per
// user, updated in place. Sugar and fiber targets are optional.
type DailyGoal struct {
	gorm.Model
	UserID   uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	Calories float64  `json:"calories"` // kcal
	Protein  float64  `json:"protein"`  // g
	Carbs    float64  `json:"carbs"`    // g
	Fat      float64  `json:"fat"`      // g
	Sugar    *float64 `json:"sugar,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}
