package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProgramDays(t *testing.T) {
	days := BuildProgramDays("2024-03-04", 3)
	require.Len(t, days, 3)

	assert.Equal(t, "2024-03-04", days[0].Date)
	assert.Equal(t, "2024-03-05", days[1].Date)
	assert.Equal(t, "2024-03-06", days[2].Date)

	for _, day := range days {
		assert.NotEmpty(t, day.ID)
		require.Len(t, day.Meals, 4)
		assert.Equal(t, "Breakfast", day.Meals[0].Name)
		assert.Equal(t, "Snacks", day.Meals[3].Name)
		for _, meal := range day.Meals {
			assert.NotEmpty(t, meal.ID)
			assert.Empty(t, meal.Items)
		}
	}
}

func TestBuildProgramDaysRejectsBadInput(t *testing.T) {
	assert.Nil(t, BuildProgramDays("not-a-date", 3))
	assert.Nil(t, BuildProgramDays("2024-03-04", 0))
	assert.Nil(t, BuildProgramDays("2024-03-04", -1))
}
