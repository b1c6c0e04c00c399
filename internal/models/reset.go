package models

import "time"

// PasswordReset tracks one OTP-based password reset attempt. The row id
// doubles as the short-lived reset token once the OTP is verified.
type PasswordReset struct {
	ID             string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID         string     `gorm:"not null;index" json:"userId"`
	OTP            string     `gorm:"not null" json:"-"`
	ExpiresAt      time.Time  `gorm:"not null" json:"expiresAt"`
	VerifiedAt     *time.Time `json:"verifiedAt,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
	Used           bool       `gorm:"default:false" json:"used"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for PasswordReset model
func (PasswordReset) TableName() string {
	return "password_resets"
}
