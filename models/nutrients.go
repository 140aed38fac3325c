package models

// Nutrients is the six-field nutrition block shared by every level of the
// composition hierarchy. Values are per the owning entity's reference
// serving. Sugar and Fiber are optional: nil means the source never
// declared them, which is distinct from an explicit zero.
type Nutrients struct {
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	Sugar    *float64 `json:"sugar,omitempty"`
	Fiber    *float64 `json:"fiber,omitempty"`
}

// Float64Ptr is a small helper for building optional nutrient values.
func Float64Ptr(v float64) *float64 { return &v }
