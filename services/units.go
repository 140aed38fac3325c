package services

import "strings"

// The converter resolves a (quantity, unit) pair against a component's
// reference serving and returns a dimensionless multiplier: "how many
// reference servings". A non-positive reference amount is rejected before
// anything else. Resolution order after the guard:
//
//  1. serving sentinel ("serving"/"servings"): quantity counts reference
//     servings directly
//  2. exact unit match: quantity / reference amount
//  3. both units in the conversion table with the same dimension: convert
//     quantity into the reference unit, then divide
//  4. fallback: quantity used as a raw multiplier (legacy behavior for
//     units the table does not know, e.g. "piece", "slice")

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindVolume unitKind = "volume"
)

type unitDef struct {
	kind   unitKind
	toBase float64 // grams for mass, milliliters for volume
}

var unitTable = map[string]unitDef{
	"mg": {kind: unitKindMass, toBase: 0.001},
	"g":  {kind: unitKindMass, toBase: 1},
	"kg": {kind: unitKindMass, toBase: 1000},
	"oz": {kind: unitKindMass, toBase: 28.349523125},
	"lb": {kind: unitKindMass, toBase: 453.59237},

	"ml":    {kind: unitKindVolume, toBase: 1},
	"l":     {kind: unitKindVolume, toBase: 1000},
	"tsp":   {kind: unitKindVolume, toBase: 4.92892159375},
	"tbsp":  {kind: unitKindVolume, toBase: 14.78676478125},
	"cup":   {kind: unitKindVolume, toBase: 236.5882365},
	"fl-oz": {kind: unitKindVolume, toBase: 29.5735295625},
}

func isServingUnit(unit string) bool {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "serving", "servings":
		return true
	}
	return false
}

func resolveUnit(unit string) (unitDef, bool) {
	def, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	return def, ok
}

// Multiplier converts (quantity, unit) into a fraction of the reference
// serving (refAmount, refUnit). It never divides by zero: a non-positive
// reference amount returns ErrInvalidReference.
func Multiplier(quantity float64, unit string, refAmount float64, refUnit string) (float64, error) {
	if refAmount <= 0 {
		return 0, ErrInvalidReference
	}
	if isServingUnit(unit) {
		return quantity, nil
	}
	if unit == refUnit {
		return quantity / refAmount, nil
	}
	from, okFrom := resolveUnit(unit)
	to, okTo := resolveUnit(refUnit)
	if okFrom && okTo && from.kind == to.kind {
		inRefUnit := quantity * from.toBase / to.toBase
		return inRefUnit / refAmount, nil
	}
	// Unknown or cross-dimension unit: treat the quantity as a raw
	// multiplier, matching what the app has always done for units like
	// "piece".
	return quantity, nil
}
