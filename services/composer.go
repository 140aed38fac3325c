package services

import "github.com/durcevicjuraj/calorie-tracker-web/models"

// component is one entry of a composition list resolved to its nutrient
// values and reference serving. Foods feed it ingredients, meals feed it
// foods; the summation is identical either way.
type component struct {
	values    models.Nutrients
	refAmount float64
	refUnit   string
	quantity  float64
	unit      string
}

// composeNutrients returns the elementwise weighted sum over the
// components. Sugar and fiber accumulate with absent values treated as 0;
// the result carries nil for a field whose running sum is exactly zero, so
// a composition of sources without sugar data stays "no data" rather than
// claiming zero sugar.
func composeNutrients(entries []component) (models.Nutrients, error) {
	if len(entries) == 0 {
		return models.Nutrients{}, ErrEmptyComposition
	}

	var total models.Nutrients
	var sugar, fiber float64
	for _, e := range entries {
		if e.quantity <= 0 {
			return models.Nutrients{}, validationf("component quantity must be positive, got %v", e.quantity)
		}
		m, err := Multiplier(e.quantity, e.unit, e.refAmount, e.refUnit)
		if err != nil {
			return models.Nutrients{}, err
		}
		total.Calories += e.values.Calories * m
		total.Protein += e.values.Protein * m
		total.Carbs += e.values.Carbs * m
		total.Fat += e.values.Fat * m
		if e.values.Sugar != nil {
			sugar += *e.values.Sugar * m
		}
		if e.values.Fiber != nil {
			fiber += *e.values.Fiber * m
		}
	}
	if sugar != 0 {
		total.Sugar = &sugar
	}
	if fiber != 0 {
		total.Fiber = &fiber
	}
	return total, nil
}

// scaleNutrients multiplies a stored nutrient block by a serving count.
// Used when logging "N servings of meal X" — no unit conversion involved.
func scaleNutrients(n models.Nutrients, factor float64) models.Nutrients {
	out := models.Nutrients{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
	}
	if n.Sugar != nil {
		out.Sugar = models.Float64Ptr(*n.Sugar * factor)
	}
	if n.Fiber != nil {
		out.Fiber = models.Float64Ptr(*n.Fiber * factor)
	}
	return out
}
