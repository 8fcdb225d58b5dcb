package models

import "gorm.io/gorm"

// TemplateMeal is the saved meal inside a MealTemplate. Items share
// the program item shape so templates drop straight into a program.
type TemplateMeal struct {
	Name         string        `json:"name"`
	Time         string        `json:"time,omitempty"`
	Items        []ProgramItem `json:"items"`
	Macros       Macros        `json:"macros"`
	MacrosSource MacroSource   `json:"macrosSource"`
}

// MealTemplate is a single saved meal the nutritionist can reuse.
// TotalMacros and ItemCount are recomputed before every save.
type MealTemplate struct {
	gorm.Model
	NutritionistID uint         `gorm:"index;not null" json:"nutritionist"`
	Name           string       `gorm:"not null" json:"name"`
	Tags           StringList   `gorm:"type:jsonb;serializer:json" json:"tags"`
	Meal           TemplateMeal `gorm:"type:jsonb;serializer:json" json:"meal"`
	TotalMacros    Macros       `gorm:"embedded;embeddedPrefix:total_" json:"totalMacros"`
	ItemCount      int          `json:"itemCount"`
}
