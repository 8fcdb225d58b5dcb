package models

import "gorm.io/gorm"

// FoodItem is the leaf nutrition definition of the library. Macros are
// stored per default serving; edits retroactively change every
// computation that references the food (there is no versioning).
type FoodItem struct {
	gorm.Model
	NutritionistID     uint   `gorm:"index;not null" json:"nutritionist"`
	Name               string `gorm:"not null" json:"name"`
	Category           string `gorm:"default:Other" json:"category"`
	DefaultServingSize string `json:"defaultServingSize"` // e.g. "100g", "1 cup"
	PerServing         Macros `gorm:"embedded;embeddedPrefix:per_serving_" json:"macrosPerServing"`
}
