package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshegilbert/nutriz/models"
)

func variantDay() models.ProgramDay {
	return models.ProgramDay{
		ID:            "day-1",
		Date:          "2024-03-04",
		ActiveVariant: "B",
		Variants: []models.DayVariant{
			{Key: "A", Meals: []models.ProgramMeal{{ID: "meal-a", Name: "Lunch"}}},
			{Key: "B", Meals: []models.ProgramMeal{{ID: "meal-b", Name: "Lunch"}}},
		},
	}
}

func TestApplyDayPatchMealsTargetActiveVariant(t *testing.T) {
	day := variantDay()

	patched := []models.ProgramMeal{{ID: "meal-new", Name: "Dinner"}}
	applyDayPatch(&day, DayPatch{Meals: &patched})

	// The meals land in the active variant, where the recompute reads
	// them from; the inactive variant is untouched.
	require.Len(t, day.Variants[1].Meals, 1)
	assert.Equal(t, "meal-new", day.Variants[1].Meals[0].ID)
	assert.Equal(t, "meal-a", day.Variants[0].Meals[0].ID)
}

func TestApplyDayPatchMealsFollowNewActiveVariant(t *testing.T) {
	day := variantDay()

	key := "A"
	patched := []models.ProgramMeal{{ID: "meal-new"}}
	applyDayPatch(&day, DayPatch{ActiveVariant: &key, Meals: &patched})

	// A patch that switches variants and supplies meals in one call
	// edits the newly active variant.
	assert.Equal(t, "meal-new", day.Variants[0].Meals[0].ID)
	assert.Equal(t, "meal-b", day.Variants[1].Meals[0].ID)
}

func TestApplyDayPatchOnPlainDay(t *testing.T) {
	day := models.ProgramDay{ID: "day-1", Meals: []models.ProgramMeal{{ID: "meal-old"}}}

	date := "2024-03-10"
	patched := []models.ProgramMeal{{ID: "meal-new"}}
	applyDayPatch(&day, DayPatch{Date: &date, Meals: &patched})

	assert.Equal(t, "2024-03-10", day.Date)
	require.Len(t, day.Meals, 1)
	assert.Equal(t, "meal-new", day.Meals[0].ID)
}
