package macros

import (
	"github.com/joshegilbert/nutriz/models"
)

// RollupMeal derives a meal's macros from its already-resolved items.
// Overridden meals keep their stored values; their items are still
// resolved individually so drilling in shows correct detail.
func RollupMeal(meal *models.ProgramMeal) {
	if meal.MacrosSource == models.MacroSourceOverridden {
		meal.Macros = meal.Macros.Normalized()
		return
	}

	var totals models.Macros
	for i := range meal.Items {
		totals = totals.Add(meal.Items[i].Macros)
	}
	meal.Macros = totals
	meal.MacrosSource = models.MacroSourceAuto
}

// RollupDay derives a day's macros from its meals. When the day has
// variants, every variant rolls up independently, day.Meals is
// re-mirrored from the active variant, and the active variant's total
// becomes the day total (unless the day itself is overridden).
func RollupDay(day *models.ProgramDay) {
	if len(day.Variants) > 0 {
		active := ActiveVariant(day)
		day.Meals = active.Meals

		if day.MacrosSource == models.MacroSourceOverridden {
			day.Macros = day.Macros.Normalized()
			return
		}
		day.Macros = active.Macros
		day.MacrosSource = models.MacroSourceAuto
		return
	}

	if day.MacrosSource == models.MacroSourceOverridden {
		day.Macros = day.Macros.Normalized()
		return
	}

	var totals models.Macros
	for i := range day.Meals {
		totals = totals.Add(day.Meals[i].Macros)
	}
	day.Macros = totals
	day.MacrosSource = models.MacroSourceAuto
}

// RollupProgram derives the program total from its days.
func RollupProgram(program *models.Program) {
	if program.MacrosSource == models.MacroSourceOverridden {
		program.Macros = program.Macros.Normalized()
		return
	}

	var totals models.Macros
	for i := range program.Days {
		totals = totals.Add(program.Days[i].Macros)
	}
	program.Macros = totals
	program.MacrosSource = models.MacroSourceAuto
}

// ActiveVariant returns the day's selected variant, falling back to
// the first one when the named key is absent. The day must have at
// least one variant.
func ActiveVariant(day *models.ProgramDay) *models.DayVariant {
	for i := range day.Variants {
		if day.Variants[i].Key == day.ActiveVariant {
			return &day.Variants[i]
		}
	}
	return &day.Variants[0]
}

func rollupVariant(variant *models.DayVariant, store Store) {
	for m := range variant.Meals {
		meal := &variant.Meals[m]
		for i := range meal.Items {
			ResolveItem(&meal.Items[i], store)
		}
		RollupMeal(meal)
	}

	if variant.MacrosSource == models.MacroSourceOverridden {
		variant.Macros = variant.Macros.Normalized()
		return
	}

	var totals models.Macros
	for i := range variant.Meals {
		totals = totals.Add(variant.Meals[i].Macros)
	}
	variant.Macros = totals
	variant.MacrosSource = models.MacroSourceAuto
}

// RecalculateProgram runs the full bottom-up pass: items, then meals,
// then variants/days, then the program, strictly in that order since
// each level sums the freshly resolved level below. The tree is
// mutated in place. Display rounding happens once at the end, never on
// intermediate sums, and the whole pass is a fixed point: running it
// twice without a structural change yields identical totals.
func RecalculateProgram(program *models.Program, store Store) *models.Program {
	for d := range program.Days {
		day := &program.Days[d]

		if len(day.Variants) > 0 {
			for v := range day.Variants {
				rollupVariant(&day.Variants[v], store)
			}
		} else {
			for m := range day.Meals {
				meal := &day.Meals[m]
				for i := range meal.Items {
					ResolveItem(&meal.Items[i], store)
				}
				RollupMeal(meal)
			}
		}

		RollupDay(day)
	}

	RollupProgram(program)
	roundProgram(program)
	return program
}

// roundProgram applies the display-rounding convention to every
// engine-derived node before the document is persisted or serialized.
// User-entered values are never rounded: custom item macros and
// overridden totals are the stored source of truth, so rewriting them
// would corrupt the next recompute's inputs.
func roundProgram(program *models.Program) {
	for d := range program.Days {
		day := &program.Days[d]
		for v := range day.Variants {
			variant := &day.Variants[v]
			roundMeals(variant.Meals)
			if variant.MacrosSource != models.MacroSourceOverridden {
				variant.Macros = variant.Macros.Rounded()
			}
		}
		roundMeals(day.Meals)
		if day.MacrosSource != models.MacroSourceOverridden {
			day.Macros = day.Macros.Rounded()
		}
	}
	if program.MacrosSource != models.MacroSourceOverridden {
		program.Macros = program.Macros.Rounded()
	}
}

func roundMeals(meals []models.ProgramMeal) {
	for m := range meals {
		meal := &meals[m]
		for i := range meal.Items {
			item := &meal.Items[i]
			if item.Type == models.ItemCustom || item.MacrosSource == models.MacroSourceOverridden {
				continue
			}
			item.Macros = item.Macros.Rounded()
		}
		if meal.MacrosSource != models.MacroSourceOverridden {
			meal.Macros = meal.Macros.Rounded()
		}
	}
}
