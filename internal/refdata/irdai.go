package refdata

import "github.com/bimadesk/bimadesk/internal/models"

// TimelineStage is one step of an IRDAI processing timeline, with the day
// offset from submission at which it is expected.
type TimelineStage struct {
	Stage       string `json:"stage"`
	Day         int    `json:"day"`
	Description string `json:"description"`
}

// TimelineDefinition is the canonical IRDAI reference entry for a policy
// type: summary day counts plus the expected stage-by-stage schedule.
type TimelineDefinition struct {
	Name               string          `json:"name"`
	SettlementDays     int             `json:"settlementDays"`
	InvestigationDays  int             `json:"investigationDays"`
	PolicyIssuanceDays int             `json:"policyIssuanceDays,omitempty"`
	Stages             []TimelineStage `json:"stages"`
	Guidelines         []string        `json:"guidelines"`
	InterestRate       string          `json:"interestRate"`
}

// DefaultSettlementDays applies when a claim's policy type has no timeline
// entry, so settlement projections always resolve.
const DefaultSettlementDays = 30

var irdaiTimelines = map[string]TimelineDefinition{
	models.PolicyTypeHealth: {
		Name:              "Health Insurance",
		SettlementDays:    30,
		InvestigationDays: 45,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim submitted and logged"},
			{Stage: "Document Verification", Day: 3, Description: "Initial documents reviewed"},
			{Stage: "Medical Investigation", Day: 7, Description: "Medical report and assessment"},
			{Stage: "Assessment & Review", Day: 14, Description: "Claim assessment by panel"},
			{Stage: "Approval/Rejection", Day: 30, Description: "Final decision"},
		},
		Guidelines: []string{
			"Claim settlement within 30 days of all required documents",
			"Investigation completion within 45 days if required",
			"No rejection for missing documents or delayed intimation",
			"Interest payable for delays at 2% above bank rate",
		},
		InterestRate: "12% p.a. on delayed payments after 30 days",
	},
	models.PolicyTypeLife: {
		Name:              "Life Insurance",
		SettlementDays:    30,
		InvestigationDays: 90,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim submitted and logged"},
			{Stage: "Document Verification", Day: 5, Description: "Submission of required documents"},
			{Stage: "Investigation", Day: 30, Description: "Underwriting and investigation"},
			{Stage: "Verification", Day: 60, Description: "Additional verification if needed"},
			{Stage: "Settlement", Day: 90, Description: "Final approval and settlement"},
		},
		Guidelines: []string{
			"Death claim settlement within 30 days of all documents (no investigation)",
			"Investigation completion within 90 days if required",
			"Final settlement within 30 days after investigation",
			"Interest at 2% above bank rate on delayed payments",
			"Penalties for non-compliance: daily fines applicable",
		},
		InterestRate: "12% p.a. on delayed payments after 30 days",
	},
	models.PolicyTypeMotorCar: {
		Name:               "Motor Car Insurance",
		SettlementDays:     7,
		InvestigationDays:  30,
		PolicyIssuanceDays: 7,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim registered"},
			{Stage: "Survey Arrangement", Day: 1, Description: "Surveyor assigned"},
			{Stage: "Survey Inspection", Day: 3, Description: "Physical inspection"},
			{Stage: "Assessment", Day: 5, Description: "Damage assessment"},
			{Stage: "Settlement", Day: 7, Description: "Settlement approval"},
		},
		Guidelines: []string{
			"Policy issued within 7 days of receiving complete proposal",
			"Further documentation requested in one go within 7 days",
			"Claim settlement within 30 days after investigation completion",
			"Investigation must be completed within 30 days",
			"Interest on delays at 2% above bank rate",
		},
		InterestRate: "12% p.a. on delayed payments after 7 days",
	},
	models.PolicyTypeMotorBike: {
		Name:               "Motor Bike Insurance",
		SettlementDays:     7,
		InvestigationDays:  30,
		PolicyIssuanceDays: 7,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim registered"},
			{Stage: "Survey Arrangement", Day: 1, Description: "Surveyor assigned"},
			{Stage: "Survey Inspection", Day: 3, Description: "Physical inspection"},
			{Stage: "Assessment", Day: 5, Description: "Damage assessment"},
			{Stage: "Settlement", Day: 7, Description: "Settlement approval"},
		},
		Guidelines: []string{
			"Policy issued within 7 days of proposal",
			"Single request for all additional documents (7 days max)",
			"Claim processing within 30 days after investigation",
			"Interest on delayed settlement at 2% above bank rate",
		},
		InterestRate: "12% p.a. on delayed payments after 7 days",
	},
	models.PolicyTypeTravel: {
		Name:              "Travel Insurance",
		SettlementDays:    30,
		InvestigationDays: 30,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim submitted"},
			{Stage: "Document Review", Day: 5, Description: "Document verification"},
			{Stage: "Assessment", Day: 15, Description: "Claim assessment"},
			{Stage: "Verification", Day: 25, Description: "Final verification"},
			{Stage: "Settlement", Day: 30, Description: "Payment issued"},
		},
		Guidelines: []string{
			"Claim settlement within 30 days of all documents",
			"Investigation completion within 30 days",
			"Coverage for medical emergencies abroad",
			"Interest at 2% above bank rate for delays",
		},
		InterestRate: "12% p.a. on delayed payments after 30 days",
	},
	models.PolicyTypeHome: {
		Name:               "Home Insurance",
		SettlementDays:     7,
		InvestigationDays:  30,
		PolicyIssuanceDays: 7,
		Stages: []TimelineStage{
			{Stage: "Claim Submission", Day: 0, Description: "Claim registered"},
			{Stage: "Survey Arrangement", Day: 1, Description: "Surveyor assigned"},
			{Stage: "Site Inspection", Day: 3, Description: "Property inspection"},
			{Stage: "Assessment", Day: 5, Description: "Damage assessment"},
			{Stage: "Settlement", Day: 7, Description: "Settlement approval"},
		},
		Guidelines: []string{
			"Policy issued within 7 days of receiving proposal",
			"Claim settlement within 30 days after investigation",
			"Investigation completion within 30 days",
			"Interest payable for delays at 2% above bank rate",
		},
		InterestRate: "12% p.a. on delayed payments after 7 days",
	},
}

// Timeline returns the IRDAI timeline definition for a policy type
func Timeline(policyType string) (TimelineDefinition, bool) {
	def, ok := irdaiTimelines[policyType]
	return def, ok
}

// SettlementDays returns the IRDAI settlement day count for a policy type,
// or the default when the type is unknown.
func SettlementDays(policyType string) int {
	if def, ok := irdaiTimelines[policyType]; ok {
		return def.SettlementDays
	}
	return DefaultSettlementDays
}

// AllTimelines returns the full reference table keyed by policy type
func AllTimelines() map[string]TimelineDefinition {
	out := make(map[string]TimelineDefinition, len(irdaiTimelines))
	for k, v := range irdaiTimelines {
		out[k] = v
	}
	return out
}
