package models

import (
	"time"

	"gorm.io/gorm"
)

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Client is a coached person's profile. A client belongs to one
// nutritionist and has at most one active program.
type Client struct {
	gorm.Model
	NutritionistID uint       `gorm:"index;not null" json:"nutritionist"`
	Name           string     `gorm:"not null" json:"name"`
	DOB            time.Time  `json:"dob"`
	Contact        Contact    `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	Goals          StringList `gorm:"type:jsonb;serializer:json" json:"goals"`
	Notes          string     `json:"notes"`
}

// StringList is a JSON-encoded string array column.
type StringList []string
