package models

import "gorm.io/gorm"

// DailyHistory is the per-(user, date) aggregate row. The goal columns are
// frozen at first materialization so historical days keep showing the
// targets that were active then; the consumed columns are refreshed on
// every reconciliation (and may be manually corrected within the editable
// window).
type DailyHistory struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_date" json:"user_id"`
	Date   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_date" json:"date"`

	CaloriesGoal float64  `json:"calories_goal"`
	ProteinGoal  float64  `json:"protein_goal"`
	CarbsGoal    float64  `json:"carbs_goal"`
	FatGoal      float64  `json:"fat_goal"`
	SugarGoal    *float64 `json:"sugar_goal,omitempty"`
	FiberGoal    *float64 `json:"fiber_goal,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
}
