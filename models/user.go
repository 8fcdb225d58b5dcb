package models

import (
	"gorm.io/gorm"
)

// User is a nutritionist account. Every other top-level entity is
// owned by exactly one User.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"fullName"`
	Role     string `gorm:"default:nutritionist" json:"role"`
}
