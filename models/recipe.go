package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Ingredient references a FoodItem by id. Quantity is how many default
// servings of the food the recipe uses; Amount is the descriptive
// label shown to the user ("200g", "1 cup").
type Ingredient struct {
	FoodItemID string  `json:"foodItem"`
	Amount     string  `json:"amount"`
	Quantity   float64 `json:"quantity"`
	Notes      string  `json:"notes,omitempty"`
}

// UnmarshalJSON defaults an absent quantity to one serving and clamps
// negatives to zero.
func (ing *Ingredient) UnmarshalJSON(data []byte) error {
	type alias Ingredient
	aux := struct {
		Quantity *float64 `json:"quantity"`
		*alias
	}{alias: (*alias)(ing)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Quantity == nil {
		ing.Quantity = 1
	} else {
		ing.Quantity = NormalizeAmount(*aux.Quantity)
	}
	return nil
}

type Ingredients []Ingredient

// Recipe is a named ingredient list. Recipe macros are always derived
// from the ingredient foods, never stored overridden at recipe level.
type Recipe struct {
	gorm.Model
	NutritionistID uint        `gorm:"index;not null" json:"nutritionist"`
	Name           string      `gorm:"not null" json:"name"`
	Description    string      `json:"description"`
	ImageURL       string      `json:"imageUrl"`
	Ingredients    Ingredients `gorm:"type:jsonb;serializer:json" json:"ingredients"`
	Instructions   string      `json:"instructions"`
	Tags           StringList  `gorm:"type:jsonb;serializer:json" json:"tags"`
}
