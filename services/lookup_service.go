package services

import (
	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/macros"
	"github.com/joshegilbert/nutriz/models"
)

// LoadLookups fetches one nutritionist's foods, recipes and library
// meals and builds the in-memory snapshot the macro engine resolves
// against. Because the queries are owner-scoped, a reference to
// another owner's entity resolves as not-found downstream.
func LoadLookups(nutritionistID uint) (*macros.Snapshot, error) {
	var foods []models.FoodItem
	if err := config.DB.Where("nutritionist_id = ?", nutritionistID).Find(&foods).Error; err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if err := config.DB.Where("nutritionist_id = ?", nutritionistID).Find(&recipes).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := config.DB.Where("nutritionist_id = ?", nutritionistID).Find(&meals).Error; err != nil {
		return nil, err
	}

	return macros.NewSnapshot(foods, recipes, meals), nil
}
