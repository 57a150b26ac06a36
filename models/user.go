package models

import (
	"time"

	"gorm.io/gorm"
)

// User model for lab-site administrators and editors.
// Accounts start unapproved and non-admin; approval is a one-way flip.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	IsApproved   bool      `gorm:"default:false" json:"isApproved"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = ensureID(u.ID)
	return nil
}
