package models

import "math"

// MacroSource tells whether a node's macros were computed by the
// aggregation engine or pinned manually by the nutritionist.
type MacroSource string

const (
	MacroSourceAuto       MacroSource = "auto"
	MacroSourceOverridden MacroSource = "overridden"
)

// Macros is the four tracked nutrition quantities. Attached (together
// with a MacroSource) to every item, meal, day and program node.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

func (m Macros) Scale(multiplier float64) Macros {
	return Macros{
		Calories: m.Calories * multiplier,
		Protein:  m.Protein * multiplier,
		Carbs:    m.Carbs * multiplier,
		Fat:      m.Fat * multiplier,
	}
}

// NumberOr coerces a macro field to a finite non-negative number.
// Malformed input must never propagate NaN into a sum.
func NumberOr(value, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fallback
	}
	return value
}

// NormalizeAmount coerces an item multiplier: malformed input falls
// back to 1, negative values clamp to 0 (zero is a valid placeholder).
func NormalizeAmount(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 1
	}
	if value < 0 {
		return 0
	}
	return value
}

// Normalized passes every field through the NumberOr guard.
func (m Macros) Normalized() Macros {
	return Macros{
		Calories: NumberOr(m.Calories, 0),
		Protein:  NumberOr(m.Protein, 0),
		Carbs:    NumberOr(m.Carbs, 0),
		Fat:      NumberOr(m.Fat, 0),
	}
}

// Rounded applies the display convention used at the persistence
// boundary: calories to the nearest integer, the rest to one decimal.
// Intermediate sums stay unrounded so error does not compound.
func (m Macros) Rounded() Macros {
	return Macros{
		Calories: math.Round(m.Calories),
		Protein:  roundTenth(m.Protein),
		Carbs:    roundTenth(m.Carbs),
		Fat:      roundTenth(m.Fat),
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
