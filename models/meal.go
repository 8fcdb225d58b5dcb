package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// ComponentType is what a meal component can be. Components never
// reference another meal, which keeps the lookup graph acyclic.
type ComponentType string

const (
	ComponentFood   ComponentType = "food"
	ComponentRecipe ComponentType = "recipe"
	ComponentCustom ComponentType = "custom"
)

// MealComponent is one entry of a library meal.
type MealComponent struct {
	Type         ComponentType `json:"type"`
	SourceID     string        `json:"sourceId,omitempty"`
	CustomName   string        `json:"customName,omitempty"`
	Serving      string        `json:"serving,omitempty"`
	Amount       float64       `json:"amount"`
	Notes        string        `json:"notes,omitempty"`
	Macros       Macros        `json:"macros"`
	MacrosSource MacroSource   `json:"macrosSource"`
}

func (c *MealComponent) UnmarshalJSON(data []byte) error {
	type alias MealComponent
	aux := struct {
		Amount *float64 `json:"amount"`
		*alias
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Amount == nil {
		c.Amount = 1
	} else {
		c.Amount = NormalizeAmount(*aux.Amount)
	}
	if c.Type == "" {
		if c.SourceID != "" {
			c.Type = ComponentFood
		} else {
			c.Type = ComponentCustom
		}
	}
	if c.MacrosSource == "" {
		c.MacrosSource = MacroSourceAuto
	}
	return nil
}

type MealComponents []MealComponent

// Meal is a reusable library meal. Program items of type "meal"
// resolve against its component list.
type Meal struct {
	gorm.Model
	NutritionistID uint           `gorm:"index;not null" json:"nutritionist"`
	Name           string         `gorm:"not null" json:"name"`
	Description    string         `json:"description"`
	Components     MealComponents `gorm:"type:jsonb;serializer:json" json:"components"`
	Macros         Macros         `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	MacrosSource   MacroSource    `gorm:"default:auto" json:"macrosSource"`
}
