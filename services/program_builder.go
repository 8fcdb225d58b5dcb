package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/joshegilbert/nutriz/models"
)

var defaultMealSlots = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}

// BuildProgramDays generates the day skeleton for a new program: one
// day per date from startDate, each with the standard empty meal
// slots. Returns nil when the start date does not parse or length is
// not positive.
func BuildProgramDays(startDate string, length int) models.ProgramDays {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil || length <= 0 {
		return nil
	}

	days := make(models.ProgramDays, 0, length)
	for i := 0; i < length; i++ {
		date := start.AddDate(0, 0, i)

		meals := make([]models.ProgramMeal, 0, len(defaultMealSlots))
		for _, slot := range defaultMealSlots {
			meals = append(meals, models.ProgramMeal{
				ID:           uuid.NewString(),
				Name:         slot,
				MealTime:     slot,
				Items:        []models.ProgramItem{},
				MacrosSource: models.MacroSourceAuto,
			})
		}

		days = append(days, models.ProgramDay{
			ID:           uuid.NewString(),
			Date:         date.Format("2006-01-02"),
			Meals:        meals,
			MacrosSource: models.MacroSourceAuto,
		})
	}
	return days
}
