package models

import (
	"gorm.io/gorm"
)

// Admin is the management account used for /admin routes.
// A default record is seeded at startup when the table is empty.
type Admin struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}
