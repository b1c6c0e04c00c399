package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserAccount represents a portal user
// Standardized: Go (PascalCase) -> DB (snake_case) -> JSON (camelCase)
type UserAccount struct {
	ID         string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	FirstName  string     `gorm:"not null" json:"firstName"`
	MiddleName string     `json:"middleName,omitempty"`
	LastName   string     `json:"lastName,omitempty"`
	Email      string     `gorm:"unique;not null" json:"email"`
	Password   string     `gorm:"not null" json:"-"`
	Contact    string     `gorm:"index" json:"contact,omitempty"`
	Address    string     `json:"address,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	Role       string     `gorm:"default:'customer'" json:"role"`
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for UserAccount model
func (UserAccount) TableName() string {
	return "user_accounts"
}

// FullName joins the user's name parts, skipping empty ones
func (u *UserAccount) FullName() string {
	parts := []string{}
	for _, p := range []string{u.FirstName, u.MiddleName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
