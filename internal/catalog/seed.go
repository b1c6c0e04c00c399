package catalog

import "github.com/bimadesk/bimadesk/internal/models"

// SeedPolicies returns the built-in demo policy catalog. The policy-admin
// import replaces these with live data when configured.
func SeedPolicies() []models.Policy {
	return []models.Policy{
		{
			ID:           "POL-H-001",
			Type:         models.PolicyTypeHealth,
			Name:         "Family Health Shield",
			PolicyNumber: "HLT/2024/84321",
			Provider:     "HDFC ERGO",
			SumInsured:   500000,
		},
		{
			ID:           "POL-C-002",
			Type:         models.PolicyTypeMotorCar,
			Name:         "Comprehensive Car Cover",
			PolicyNumber: "MTR/2024/55872",
			Provider:     "ICICI Lombard",
			SumInsured:   800000,
		},
		{
			ID:           "POL-B-003",
			Type:         models.PolicyTypeMotorBike,
			Name:         "Two Wheeler Protect",
			PolicyNumber: "TWB/2023/11904",
			Provider:     "Bajaj Allianz",
			SumInsured:   150000,
		},
		{
			ID:           "POL-T-004",
			Type:         models.PolicyTypeTravel,
			Name:         "Global Travel Secure",
			PolicyNumber: "TRV/2025/20417",
			Provider:     "Tata AIG",
			SumInsured:   2500000,
		},
		{
			ID:           "POL-L-005",
			Type:         models.PolicyTypeLife,
			Name:         "Smart Term Life",
			PolicyNumber: "LIF/2022/90336",
			Provider:     "LIC of India",
			SumInsured:   5000000,
		},
		{
			ID:           "POL-HM-006",
			Type:         models.PolicyTypeHome,
			Name:         "Home Suraksha Plus",
			PolicyNumber: "HOM/2024/37754",
			Provider:     "HDFC ERGO",
			SumInsured:   3000000,
		},
	}
}

var claimTypes = map[string]claimTypeGroup{
	models.PolicyTypeHealth: {
		Types: []ClaimTypeDefinition{
			{ID: "hospitalization", Name: "Hospitalization", Description: "Inpatient treatment and hospital room charges"},
			{ID: "surgery", Name: "Surgery", Description: "Planned or emergency surgical procedures"},
			{ID: "critical-illness", Name: "Critical Illness", Description: "Lump sum payout on diagnosis of a listed illness"},
			{ID: "accident-treatment", Name: "Accident Treatment", Description: "Emergency treatment after an accident"},
		},
		RequiredDocs: []string{"Hospital bills", "Discharge summary", "Doctor's prescription", "ID proof"},
	},
	models.PolicyTypeMotorCar: {
		Types: []ClaimTypeDefinition{
			{ID: "accident-damage", Name: "Accident Damage", Description: "Own-damage repair after a road accident"},
			{ID: "theft", Name: "Theft", Description: "Total loss due to vehicle theft"},
			{ID: "third-party", Name: "Third Party Liability", Description: "Damage or injury caused to a third party"},
			{ID: "fire-damage", Name: "Fire Damage", Description: "Damage due to fire or explosion"},
		},
		RequiredDocs: []string{"FIR copy", "RC book", "Driving licence", "Repair estimate"},
	},
	models.PolicyTypeMotorBike: {
		Types: []ClaimTypeDefinition{
			{ID: "accident-damage", Name: "Accident Damage", Description: "Own-damage repair after a road accident"},
			{ID: "theft", Name: "Theft", Description: "Total loss due to vehicle theft"},
			{ID: "third-party", Name: "Third Party Liability", Description: "Damage or injury caused to a third party"},
		},
		RequiredDocs: []string{"FIR copy", "RC book", "Driving licence", "Repair estimate"},
	},
	models.PolicyTypeTravel: {
		Types: []ClaimTypeDefinition{
			{ID: "trip-cancellation", Name: "Trip Cancellation", Description: "Non-refundable bookings for a cancelled trip"},
			{ID: "baggage-loss", Name: "Baggage Loss", Description: "Checked-in baggage lost or stolen in transit"},
			{ID: "medical-emergency", Name: "Medical Emergency", Description: "Emergency medical expenses while travelling"},
			{ID: "flight-delay", Name: "Flight Delay", Description: "Expenses due to extended flight delay"},
		},
		RequiredDocs: []string{"Ticket copy", "Passport", "Boarding pass", "Bills and receipts"},
	},
	models.PolicyTypeLife: {
		Types: []ClaimTypeDefinition{
			{ID: "death-claim", Name: "Death Claim", Description: "Sum assured payable to the nominee"},
			{ID: "maturity", Name: "Maturity Benefit", Description: "Payout on policy maturity"},
			{ID: "rider-benefit", Name: "Rider Benefit", Description: "Accidental death or disability rider payout"},
		},
		RequiredDocs: []string{"Death certificate", "Policy document", "Nominee ID proof", "Medical records"},
	},
	models.PolicyTypeHome: {
		Types: []ClaimTypeDefinition{
			{ID: "fire-damage", Name: "Fire Damage", Description: "Structure or contents damaged by fire"},
			{ID: "theft-burglary", Name: "Theft & Burglary", Description: "Loss of insured contents to burglary"},
			{ID: "natural-calamity", Name: "Natural Calamity", Description: "Damage from flood, earthquake or storm"},
		},
		RequiredDocs: []string{"FIR copy", "Property papers", "Damage photographs", "Repair estimate"},
	},
}

// SeedClaims returns the static demo claims shown on the tracking dashboard
// alongside user-submitted ones. Statuses beyond Pending exist only here;
// the submission flow always starts claims at Pending.
func SeedClaims() []models.Claim {
	approvedHealth := 82000.0
	rejectedReason := "Loss not covered: baggage was unattended at time of theft"

	settled := models.Claim{
		ID:             "CLM-2025-1042",
		PolicyID:       "POL-H-001",
		PolicyType:     models.PolicyTypeHealth,
		ClaimType:      "hospitalization",
		ClaimAmount:    85000,
		SumInsured:     500000,
		Description:    "Three day hospitalization for dengue treatment",
		Location:       "Pune, Maharashtra",
		IncidentDate:   "2025-05-28",
		SubmissionDate: "2025-06-02",
		Documents:      []string{"hospital-bill.pdf", "discharge-summary.pdf"},
		Status:         models.StatusSettled,
		ApprovedAmount: &approvedHealth,
	}
	settled.SetTimeline(models.Timeline{
		models.StageSubmitted:  "2025-06-02",
		models.StageVerified:   "2025-06-05",
		models.StageReviewed:   "2025-06-10",
		models.StageApproved:   "2025-06-18",
		models.StageSettled:    "2025-06-28",
	})

	underReview := models.Claim{
		ID:             "CLM-2025-2196",
		PolicyID:       "POL-C-002",
		PolicyType:     models.PolicyTypeMotorCar,
		ClaimType:      "accident-damage",
		ClaimAmount:    45000,
		SumInsured:     800000,
		Description:    "Front bumper and headlight damage in parking collision",
		Location:       "Bengaluru, Karnataka",
		IncidentDate:   "2025-07-14",
		SubmissionDate: "2025-07-15",
		Documents:      []string{"fir-copy.pdf", "repair-estimate.docx"},
		Status:         models.StatusUnderReview,
	}
	underReview.SetTimeline(models.Timeline{
		models.StageSubmitted: "2025-07-15",
		models.StageVerified:  "2025-07-17",
		models.StageReviewed:  "2025-07-20",
	})

	rejected := models.Claim{
		ID:              "CLM-2025-0873",
		PolicyID:        "POL-T-004",
		PolicyType:      models.PolicyTypeTravel,
		ClaimType:       "baggage-loss",
		ClaimAmount:     30000,
		SumInsured:      2500000,
		Description:     "Checked-in baggage lost on connecting flight",
		Location:        "Frankfurt, Germany",
		IncidentDate:    "2025-04-09",
		SubmissionDate:  "2025-04-12",
		Documents:       []string{"boarding-pass.pdf", "pir-report.pdf"},
		Status:          models.StatusRejected,
		RejectionReason: &rejectedReason,
	}
	rejected.SetTimeline(models.Timeline{
		models.StageSubmitted: "2025-04-12",
		models.StageVerified:  "2025-04-15",
		models.StageRejected:  "2025-04-22",
	})

	return []models.Claim{settled, underReview, rejected}
}
