package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// ItemType is the tagged union of what a program item can resolve
// from. Resolution is an exhaustive switch over these four variants.
type ItemType string

const (
	ItemFood   ItemType = "food"
	ItemRecipe ItemType = "recipe"
	ItemMeal   ItemType = "meal"
	ItemCustom ItemType = "custom"
)

// ProgramItem is the leaf of a planned meal. SourceID is empty for
// custom items. Amount is a multiplier, clamped to >= 0 at input time;
// custom item macros are stored as already-total and do not scale.
type ProgramItem struct {
	ID           string      `json:"id"`
	Type         ItemType    `json:"type"`
	SourceID     string      `json:"sourceId,omitempty"`
	Name         string      `json:"name"`
	Amount       float64     `json:"amount"`
	Unit         string      `json:"unit,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Time         string      `json:"time,omitempty"`
	Macros       Macros      `json:"macros"`
	MacrosSource MacroSource `json:"macrosSource"`
}

// UnmarshalJSON applies the document defaults: an absent amount means
// 1 (a present amount is clamped to >= 0), items with no type are
// custom, and the macro source defaults to auto.
func (item *ProgramItem) UnmarshalJSON(data []byte) error {
	type alias ProgramItem
	aux := struct {
		Amount *float64 `json:"amount"`
		*alias
	}{alias: (*alias)(item)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Amount == nil {
		item.Amount = 1
	} else {
		item.Amount = NormalizeAmount(*aux.Amount)
	}
	if item.Type == "" {
		item.Type = ItemCustom
	}
	if item.MacrosSource == "" {
		item.MacrosSource = MacroSourceAuto
	}
	return nil
}

type ProgramMeal struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	MealTime     string        `json:"mealTime"`
	Time         string        `json:"time,omitempty"`
	Items        []ProgramItem `json:"items"`
	Macros       Macros        `json:"macros"`
	MacrosSource MacroSource   `json:"macrosSource"`
}

// DayVariant is one A/B option of a day. The active variant's rollup
// is authoritative for the day total.
type DayVariant struct {
	Key          string        `json:"key"`
	Label        string        `json:"label,omitempty"`
	Meals        []ProgramMeal `json:"meals"`
	Macros       Macros        `json:"macros"`
	MacrosSource MacroSource   `json:"macrosSource"`
}

// ProgramDay holds one plan day. When variants exist, Meals is a
// read-convenience mirror of the active variant's meals and is
// overwritten on every recompute, so it can never drift.
type ProgramDay struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Notes         string        `json:"notes,omitempty"`
	Meals         []ProgramMeal `json:"meals"`
	Macros        Macros        `json:"macros"`
	MacrosSource  MacroSource   `json:"macrosSource"`
	ActiveVariant string        `json:"activeVariant,omitempty"`
	Variants      []DayVariant  `json:"variants,omitempty"`
}

type ProgramDays []ProgramDay

// Program is the multi-day meal plan for one client. The whole day
// tree is a single document column; every mutation rewrites it after a
// full bottom-up recompute.
type Program struct {
	gorm.Model
	NutritionistID uint        `gorm:"index;not null" json:"nutritionist"`
	ClientID       uint        `gorm:"index;not null" json:"client"`
	Name           string      `json:"name"`
	StartDate      string      `json:"startDate"` // YYYY-MM-DD
	Length         int         `json:"length"`
	Macros         Macros      `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	MacrosSource   MacroSource `gorm:"default:auto" json:"macrosSource"`
	Days           ProgramDays `gorm:"type:jsonb;serializer:json" json:"days"`
}
