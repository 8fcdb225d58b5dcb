package macros

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshegilbert/nutriz/models"
)

func chickenMeal() models.ProgramMeal {
	return models.ProgramMeal{
		ID:   "meal-1",
		Name: "Lunch",
		Items: []models.ProgramItem{
			{ID: "item-1", Type: models.ItemFood, SourceID: "1", Amount: 1},
			{ID: "item-2", Type: models.ItemFood, SourceID: "1", Amount: 2},
		},
		MacrosSource: models.MacroSourceAuto,
	}
}

func testProgram() *models.Program {
	return &models.Program{
		NutritionistID: 1,
		ClientID:       1,
		Name:           "Cut phase",
		StartDate:      "2024-03-04",
		Length:         1,
		MacrosSource:   models.MacroSourceAuto,
		Days: models.ProgramDays{
			{
				ID:           "day-1",
				Date:         "2024-03-04",
				Meals:        []models.ProgramMeal{chickenMeal()},
				MacrosSource: models.MacroSourceAuto,
			},
		},
	}
}

func TestMealRollupSumsItems(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	RecalculateProgram(program, store)

	meal := program.Days[0].Meals[0]
	assert.Equal(t, models.Macros{Calories: 495, Protein: 93, Carbs: 0, Fat: 10.8}, meal.Macros)
	assert.Equal(t, models.MacroSourceAuto, meal.MacrosSource)

	// Day and program mirror the single meal.
	assert.Equal(t, meal.Macros, program.Days[0].Macros)
	assert.Equal(t, meal.Macros, program.Macros)
}

func TestOverriddenMealIsOpaqueButChildrenRecompute(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	meal := &program.Days[0].Meals[0]
	meal.Macros = models.Macros{Calories: 500, Protein: 90, Carbs: 0, Fat: 10}
	meal.MacrosSource = models.MacroSourceOverridden

	// Structural change under the overridden meal.
	meal.Items = append(meal.Items, models.ProgramItem{
		ID: "item-3", Type: models.ItemFood, SourceID: "1", Amount: 1,
	})
	RecalculateProgram(program, store)

	meal = &program.Days[0].Meals[0]
	assert.Equal(t, models.Macros{Calories: 500, Protein: 90, Carbs: 0, Fat: 10}, meal.Macros)
	assert.Equal(t, models.MacroSourceOverridden, meal.MacrosSource)

	// Children still resolved so drill-down shows fresh detail.
	assert.Equal(t, models.Macros{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}, meal.Items[2].Macros)

	// The day re-sums using the overridden 500, not the item sum.
	assert.Equal(t, models.Macros{Calories: 500, Protein: 90, Carbs: 0, Fat: 10}, program.Days[0].Macros)
}

func TestRecalculateIsIdempotent(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	// Cover every resolution path: snapshot-derived food items plus
	// custom and overridden leaves, whose stored values are the only
	// source the second pass can read.
	program.Days[0].Meals[0].Items = append(program.Days[0].Meals[0].Items,
		models.ProgramItem{
			ID: "item-custom", Type: models.ItemCustom,
			Macros: models.Macros{Calories: 120.4, Protein: 9.03, Carbs: 14.55, Fat: 3.28},
		},
		models.ProgramItem{
			ID: "item-pinned", Type: models.ItemFood, SourceID: "1", Amount: 1,
			Macros:       models.Macros{Calories: 150.5, Protein: 28.25, Carbs: 0, Fat: 3.33},
			MacrosSource: models.MacroSourceOverridden,
		},
	)
	program.Days = append(program.Days, models.ProgramDay{
		ID:   "day-pinned",
		Date: "2024-03-05",
		Macros: models.Macros{
			Calories: 1799.75, Protein: 149.92, Carbs: 120.06, Fat: 59.97,
		},
		MacrosSource: models.MacroSourceOverridden,
	})

	RecalculateProgram(program, store)
	first, err := json.Marshal(program)
	require.NoError(t, err)

	RecalculateProgram(program, store)
	second, err := json.Marshal(program)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRecalculateKeepsCustomItemPrecision(t *testing.T) {
	store := NewSnapshot(nil, nil, nil)
	program := testProgram()
	program.Days[0].Meals[0].Items = []models.ProgramItem{
		{ID: "c1", Type: models.ItemCustom, Macros: models.Macros{Calories: 0.4, Fat: 0.05}},
		{ID: "c2", Type: models.ItemCustom, Macros: models.Macros{Calories: 0.4, Fat: 0.05}},
	}

	RecalculateProgram(program, store)

	meal := program.Days[0].Meals[0]
	// The stored custom values survive untouched; only the derived
	// meal total is rounded (0.4 + 0.4 = 0.8 → 1, 0.05 + 0.05 = 0.1).
	assert.Equal(t, models.Macros{Calories: 0.4, Fat: 0.05}, meal.Items[0].Macros)
	assert.Equal(t, models.Macros{Calories: 1, Fat: 0.1}, meal.Macros)

	RecalculateProgram(program, store)

	meal = program.Days[0].Meals[0]
	assert.Equal(t, models.Macros{Calories: 0.4, Fat: 0.05}, meal.Items[0].Macros)
	assert.Equal(t, models.Macros{Calories: 1, Fat: 0.1}, meal.Macros)
}

func TestRecalculateKeepsOverriddenValuesUnrounded(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	meal := &program.Days[0].Meals[0]
	meal.Macros = models.Macros{Calories: 500.25, Protein: 90.12, Carbs: 0, Fat: 10.04}
	meal.MacrosSource = models.MacroSourceOverridden

	RecalculateProgram(program, store)
	RecalculateProgram(program, store)

	// The pin keeps its sub-precision value; rounding applies only to
	// the derived day total above it.
	assert.Equal(t, models.Macros{Calories: 500.25, Protein: 90.12, Carbs: 0, Fat: 10.04}, program.Days[0].Meals[0].Macros)
	assert.Equal(t, models.Macros{Calories: 500, Protein: 90.1, Carbs: 0, Fat: 10}, program.Days[0].Macros)
}

func TestProgramSumsAcrossDays(t *testing.T) {
	store := testSnapshot()
	program := testProgram()
	program.Days = append(program.Days, models.ProgramDay{
		ID:           "day-2",
		Date:         "2024-03-05",
		Meals:        []models.ProgramMeal{chickenMeal()},
		MacrosSource: models.MacroSourceAuto,
	})

	RecalculateProgram(program, store)

	assert.Equal(t, models.Macros{Calories: 990, Protein: 186, Carbs: 0, Fat: 21.6}, program.Macros)
}

func TestVariantRollupUsesActiveVariant(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	day := &program.Days[0]
	day.ActiveVariant = "B"
	day.Variants = []models.DayVariant{
		{
			Key:          "A",
			Meals:        []models.ProgramMeal{chickenMeal()},
			MacrosSource: models.MacroSourceAuto,
		},
		{
			Key: "B",
			Meals: []models.ProgramMeal{{
				ID: "meal-b",
				Items: []models.ProgramItem{
					{ID: "item-b", Type: models.ItemFood, SourceID: "1", Amount: 1},
				},
				MacrosSource: models.MacroSourceAuto,
			}},
			MacrosSource: models.MacroSourceAuto,
		},
	}

	RecalculateProgram(program, store)

	day = &program.Days[0]
	assert.Equal(t, models.Macros{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}, day.Macros)

	// Both variants carry their own fresh rollups.
	assert.Equal(t, models.Macros{Calories: 495, Protein: 93, Carbs: 0, Fat: 10.8}, day.Variants[0].Macros)

	// day.meals mirrors the active variant.
	require.Len(t, day.Meals, 1)
	assert.Equal(t, "meal-b", day.Meals[0].ID)
}

func TestVariantFallbackToFirstWhenKeyAbsent(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	day := &program.Days[0]
	day.ActiveVariant = "C"
	day.Variants = []models.DayVariant{
		{
			Key:          "A",
			Meals:        []models.ProgramMeal{chickenMeal()},
			MacrosSource: models.MacroSourceAuto,
		},
	}

	RecalculateProgram(program, store)

	assert.Equal(t, models.Macros{Calories: 495, Protein: 93, Carbs: 0, Fat: 10.8}, program.Days[0].Macros)
}

func TestRoundingAppliedAtTheEnd(t *testing.T) {
	store := NewSnapshot([]models.FoodItem{
		{
			Model:      chicken().Model,
			PerServing: models.Macros{Calories: 100.4, Protein: 10.04, Carbs: 0.33, Fat: 1.26},
		},
	}, nil, nil)

	program := testProgram()
	program.Days[0].Meals[0].Items = []models.ProgramItem{
		{ID: "i1", Type: models.ItemFood, SourceID: "1", Amount: 1},
		{ID: "i2", Type: models.ItemFood, SourceID: "1", Amount: 1},
	}

	RecalculateProgram(program, store)

	meal := program.Days[0].Meals[0]
	// Items round individually for display...
	assert.Equal(t, models.Macros{Calories: 100, Protein: 10, Carbs: 0.3, Fat: 1.3}, meal.Items[0].Macros)
	// ...but the meal total is the rounded full-precision sum
	// (2 × 0.33 = 0.66 → 0.7, not 0.3 + 0.3).
	assert.Equal(t, models.Macros{Calories: 201, Protein: 20.1, Carbs: 0.7, Fat: 2.5}, meal.Macros)
}

func TestOverriddenDayAndProgram(t *testing.T) {
	store := testSnapshot()
	program := testProgram()

	program.Days[0].Macros = models.Macros{Calories: 1800, Protein: 150, Carbs: 120, Fat: 60}
	program.Days[0].MacrosSource = models.MacroSourceOverridden

	RecalculateProgram(program, store)

	assert.Equal(t, models.Macros{Calories: 1800, Protein: 150, Carbs: 120, Fat: 60}, program.Days[0].Macros)
	// Program sums the overridden day value.
	assert.Equal(t, models.Macros{Calories: 1800, Protein: 150, Carbs: 120, Fat: 60}, program.Macros)

	// Meals beneath the overridden day still recomputed.
	assert.Equal(t, models.Macros{Calories: 495, Protein: 93, Carbs: 0, Fat: 10.8}, program.Days[0].Meals[0].Macros)
}

func TestSumConsistencyAcrossLevels(t *testing.T) {
	store := testSnapshot()
	program := testProgram()
	program.Days[0].Meals = append(program.Days[0].Meals, models.ProgramMeal{
		ID: "meal-2",
		Items: []models.ProgramItem{
			{ID: "x", Type: models.ItemRecipe, SourceID: "10", Amount: 1},
		},
		MacrosSource: models.MacroSourceAuto,
	})

	RecalculateProgram(program, store)

	day := program.Days[0]
	var mealSum models.Macros
	for _, m := range day.Meals {
		mealSum = mealSum.Add(m.Macros)
	}
	assert.InDelta(t, mealSum.Calories, day.Macros.Calories, 0.5)
	assert.InDelta(t, mealSum.Protein, day.Macros.Protein, 0.1)
	assert.InDelta(t, mealSum.Carbs, day.Macros.Carbs, 0.1)
	assert.InDelta(t, mealSum.Fat, day.Macros.Fat, 0.1)
}
