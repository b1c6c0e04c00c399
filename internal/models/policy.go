package models

import "time"

// Policy type identifiers used across the catalog, claims and timelines
const (
	PolicyTypeHealth    = "health"
	PolicyTypeMotorCar  = "motor-car"
	PolicyTypeMotorBike = "motor-bike"
	PolicyTypeTravel    = "travel"
	PolicyTypeLife      = "life"
	PolicyTypeHome      = "home"
)

// Policy represents a customer's insurance policy in the catalog.
// Catalog entries are read-only after seed load; the policy-admin import
// is the only writer.
type Policy struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Type         string  `gorm:"not null;index" json:"type"`
	Name         string  `gorm:"not null" json:"name"`
	PolicyNumber string  `gorm:"unique;not null" json:"policyNumber"`
	Provider     string  `json:"provider"`
	SumInsured   float64 `gorm:"not null" json:"sumInsured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Policy model
func (Policy) TableName() string {
	return "policies"
}
