package models

import "gorm.io/gorm"

const (
	TemplateTypeDay    = "day"
	TemplateTypeLayout = "layout"
)

// LayoutMeal is a name/time stub used by layout templates.
type LayoutMeal struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// Template is a reusable day structure. Day templates carry full
// meals; layout templates only the meal slots.
type Template struct {
	gorm.Model
	NutritionistID uint          `gorm:"index;not null" json:"nutritionist"`
	Type           string        `gorm:"not null" json:"type"` // day | layout
	Name           string        `gorm:"not null" json:"name"`
	Tags           StringList    `gorm:"type:jsonb;serializer:json" json:"tags"`
	Meals          []ProgramMeal `gorm:"type:jsonb;serializer:json" json:"meals,omitempty"`
	LayoutMeals    []LayoutMeal  `gorm:"type:jsonb;serializer:json" json:"layoutMeals,omitempty"`
}
