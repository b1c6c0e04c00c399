// Package refdata holds the portal's static reference tables: policy-type
// labels and icons, claim status display styles, the canonical timeline
// stage order and the IRDAI processing timelines. All lookups are total
// functions with neutral fallbacks; nothing here ever panics.
package refdata

import "github.com/bimadesk/bimadesk/internal/models"

// StatusStyle describes how a claim status is rendered
type StatusStyle struct {
	Background string `json:"background"`
	TextColor  string `json:"textColor"`
	Icon       string `json:"icon"`
}

// Stage pairs a timeline stage key with its display label
type Stage struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// FilterOption is one entry of a dashboard filter row
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

var iconMap = map[string]string{
	models.PolicyTypeHealth:    "heart",
	models.PolicyTypeMotorCar:  "car",
	models.PolicyTypeMotorBike: "bike",
	models.PolicyTypeTravel:    "plane",
	models.PolicyTypeLife:      "shield",
	models.PolicyTypeHome:      "home",
}

var policyLabels = map[string]string{
	models.PolicyTypeHealth:    "Health Insurance",
	models.PolicyTypeMotorCar:  "Car Insurance",
	models.PolicyTypeMotorBike: "Bike Insurance",
	models.PolicyTypeTravel:    "Travel Insurance",
	models.PolicyTypeLife:      "Life Insurance",
	models.PolicyTypeHome:      "Home Insurance",
}

var statusStyles = map[models.Status]StatusStyle{
	models.StatusPending:              {Background: "yellow-100", TextColor: "yellow-700", Icon: "clock"},
	models.StatusDocumentVerification: {Background: "blue-100", TextColor: "blue-700", Icon: "file-text"},
	models.StatusUnderReview:          {Background: "blue-100", TextColor: "blue-700", Icon: "clock"},
	models.StatusInvestigation:        {Background: "orange-100", TextColor: "orange-700", Icon: "info"},
	models.StatusApproved:             {Background: "green-100", TextColor: "green-700", Icon: "check-circle"},
	models.StatusRejected:             {Background: "red-100", TextColor: "red-700", Icon: "x-circle"},
	models.StatusSettled:              {Background: "green-100", TextColor: "green-700", Icon: "check-circle"},
}

// neutralStyle is the fallback for unknown statuses
var neutralStyle = StatusStyle{Background: "gray-100", TextColor: "gray-700", Icon: "circle"}

// StageOrder is the canonical rendering order for timeline stages
var StageOrder = []Stage{
	{Key: models.StageSubmitted, Label: "Submitted"},
	{Key: models.StageVerified, Label: "Verified"},
	{Key: models.StageReviewed, Label: "Reviewed"},
	{Key: models.StageInvestigation, Label: "Investigation"},
	{Key: models.StageApproved, Label: "Approved"},
	{Key: models.StageRejected, Label: "Rejected"},
	{Key: models.StageSettled, Label: "Settled"},
}

// ValidDocFormats lists the file extensions accepted for claim documents
var ValidDocFormats = []string{"pdf", "doc", "docx", "xls", "xlsx"}

// PolicyFilters drives the policy-type filter row on the tracking dashboard
var PolicyFilters = []FilterOption{
	{ID: "all", Label: "All"},
	{ID: models.PolicyTypeHealth, Label: "Health", Icon: "heart"},
	{ID: models.PolicyTypeMotorCar, Label: "Car", Icon: "car"},
	{ID: models.PolicyTypeMotorBike, Label: "Bike", Icon: "bike"},
	{ID: models.PolicyTypeTravel, Label: "Travel", Icon: "plane"},
	{ID: models.PolicyTypeLife, Label: "Life", Icon: "shield"},
	{ID: models.PolicyTypeHome, Label: "Home", Icon: "home"},
}

// StatusFilters drives the status filter row on the tracking dashboard
var StatusFilters = []FilterOption{
	{ID: "all", Label: "All Status"},
	{ID: string(models.StatusPending), Label: "Pending"},
	{ID: string(models.StatusUnderReview), Label: "Under Review"},
	{ID: string(models.StatusApproved), Label: "Approved"},
	{ID: string(models.StatusRejected), Label: "Rejected"},
	{ID: string(models.StatusSettled), Label: "Settled"},
}

// IconFor returns the icon slug for a policy type, falling back to a
// generic document icon for unknown input.
func IconFor(policyType string) string {
	if icon, ok := iconMap[policyType]; ok {
		return icon
	}
	return "file-text"
}

// LabelFor returns the human-readable name of a policy type
func LabelFor(policyType string) string {
	if label, ok := policyLabels[policyType]; ok {
		return label
	}
	return "Insurance Policy"
}

// StyleFor returns the display style for a claim status. Unknown statuses
// get a neutral gray style.
func StyleFor(status models.Status) StatusStyle {
	if style, ok := statusStyles[status]; ok {
		return style
	}
	return neutralStyle
}

// PolicyTypes returns the known policy types in catalog order
func PolicyTypes() []string {
	return []string{
		models.PolicyTypeHealth,
		models.PolicyTypeMotorCar,
		models.PolicyTypeMotorBike,
		models.PolicyTypeTravel,
		models.PolicyTypeLife,
		models.PolicyTypeHome,
	}
}
