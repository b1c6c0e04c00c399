package models

import (
	"time"

	"gorm.io/datatypes"
)

// Status is the canonical claim status vocabulary. The display strings are
// also the persisted values, matching the portal's storage contract.
type Status string

const (
	StatusPending              Status = "Pending"
	StatusDocumentVerification Status = "Document Verification"
	StatusUnderReview          Status = "Under Review"
	StatusInvestigation        Status = "Investigation"
	StatusApproved             Status = "Approved"
	StatusRejected             Status = "Rejected"
	StatusSettled              Status = "Settled"
)

// Timeline stage keys. A claim's timeline holds the date each stage was
// reached, keyed by these identifiers.
const (
	StageSubmitted     = "submitted"
	StageVerified      = "verified"
	StageReviewed      = "reviewed"
	StageInvestigation = "investigation"
	StageApproved      = "approved"
	StageRejected      = "rejected"
	StageSettled       = "settled"
)

// Timeline maps a stage key to the ISO date (YYYY-MM-DD) it was reached.
type Timeline map[string]string

// Claim represents a submitted insurance claim. PolicyType and SumInsured
// are denormalized copies taken from the policy at submission time.
type Claim struct {
	ID              string                       `gorm:"primaryKey" json:"id"`
	PolicyID        string                       `gorm:"not null;index" json:"policyId"`
	PolicyType      string                       `gorm:"index" json:"policyType"`
	ClaimType       string                       `gorm:"not null" json:"claimType"`
	ClaimAmount     float64                      `gorm:"not null" json:"claimAmount"`
	SumInsured      float64                      `json:"sumInsured"`
	Description     string                       `gorm:"type:text" json:"description"`
	Location        string                       `json:"location"`
	IncidentDate    string                       `json:"incidentDate"`
	SubmissionDate  string                       `json:"submissionDate"`
	Documents       datatypes.JSONSlice[string]  `json:"documents"`
	Status          Status                       `gorm:"index" json:"status"`
	ApprovedAmount  *float64                     `json:"approvedAmount"`
	RejectionReason *string                      `json:"rejectionReason"`
	Timeline        datatypes.JSONType[Timeline] `json:"timeline"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Claim model
func (Claim) TableName() string {
	return "claims"
}

// TimelineMap returns the claim's timeline as a plain map, never nil.
func (c *Claim) TimelineMap() Timeline {
	tl := c.Timeline.Data()
	if tl == nil {
		return Timeline{}
	}
	return tl
}

// SetTimeline replaces the claim's timeline map
func (c *Claim) SetTimeline(tl Timeline) {
	c.Timeline = datatypes.NewJSONType(tl)
}
