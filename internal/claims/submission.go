package claims

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/refdata"
)

// Step is the position in the guided submission flow
type Step int

const (
	StepSelectPolicy Step = iota
	StepSelectClaimType
	StepDetails
	StepDocuments
	StepSubmitting
	StepSubmitted
	StepFailed
)

var stepNames = map[Step]string{
	StepSelectPolicy:    "select_policy",
	StepSelectClaimType: "select_claim_type",
	StepDetails:         "details",
	StepDocuments:       "documents",
	StepSubmitting:      "submitting",
	StepSubmitted:       "submitted",
	StepFailed:          "failed",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Receipt confirms a successful submission
type Receipt struct {
	ClaimID                string                      `json:"claimId"`
	Policy                 models.Policy               `json:"policy"`
	ClaimType              catalog.ClaimTypeDefinition `json:"claimType"`
	ClaimAmount            float64                     `json:"claimAmount"`
	ClaimPercentage        float64                     `json:"claimPercentage"`
	Documents              []string                    `json:"documents"`
	SubmissionDate         string                      `json:"submissionDate"`
	ExpectedSettlementDate string                      `json:"expectedSettlementDate"`
	SettlementDays         int                         `json:"settlementDays"`
	Status                 models.Status               `json:"status"`
}

// Submission walks a user through filing a claim: pick a policy, pick a
// claim type, fill in details, attach documents, submit. Each setter gates
// on the steps before it; a failed submit can be retried without losing any
// staged input.
type Submission struct {
	repo *Repository
	cat  *catalog.Store

	step       Step
	policy     *models.Policy
	claimType  *catalog.ClaimTypeDefinition
	details    Details
	detailsSet bool
	documents  []string
	receipt    *Receipt
	failure    error
}

// NewSubmission starts an empty submission flow
func NewSubmission(repo *Repository, cat *catalog.Store) *Submission {
	return &Submission{repo: repo, cat: cat, step: StepSelectPolicy}
}

func (s *Submission) Step() Step             { return s.step }
func (s *Submission) Policy() *models.Policy { return s.policy }
func (s *Submission) Receipt() *Receipt      { return s.receipt }
func (s *Submission) Failure() error         { return s.failure }

// ClaimType returns the selected claim type definition, or nil
func (s *Submission) ClaimType() *catalog.ClaimTypeDefinition { return s.claimType }

// Documents returns a copy of the staged document names
func (s *Submission) Documents() []string {
	return append([]string{}, s.documents...)
}

// SelectPolicy picks the policy to claim against. Changing the policy
// discards the claim-type selection since claim types depend on the policy
// type, but staged details and documents survive.
func (s *Submission) SelectPolicy(policyID string) error {
	if s.step == StepSubmitting || s.step == StepSubmitted {
		return &ValidationError{Field: "policy", Message: "submission already in progress"}
	}
	policy := s.cat.PolicyByID(policyID)
	if policy == nil {
		return ErrPolicyNotFound
	}
	if s.policy == nil || s.policy.ID != policy.ID {
		s.claimType = nil
	}
	s.policy = policy
	s.step = StepSelectClaimType
	return nil
}

// SelectClaimType picks the claim type; it must belong to the selected
// policy's type.
func (s *Submission) SelectClaimType(claimTypeID string) error {
	if s.policy == nil {
		return &ValidationError{Field: "policy", Message: "select a policy first"}
	}
	ct := catalog.ClaimType(s.policy.Type, claimTypeID)
	if ct == nil {
		return &ValidationError{Field: "claimType", Message: "claim type not available for this policy"}
	}
	s.claimType = ct
	if s.step < StepDetails {
		s.step = StepDetails
	}
	return nil
}

// SetDetails records the incident details. The incident date must be a
// valid date no later than today and the amount must pass the policy's
// sum-insured check.
func (s *Submission) SetDetails(d Details) error {
	if s.policy == nil || s.claimType == nil {
		return &ValidationError{Field: "claimType", Message: "select a policy and claim type first"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Message: "description is required"}
	}
	incident, err := time.Parse("2006-01-02", d.IncidentDate)
	if err != nil {
		return &ValidationError{Field: "incidentDate", Message: "incident date must be YYYY-MM-DD"}
	}
	if incident.After(time.Now()) {
		return &ValidationError{Field: "incidentDate", Message: "incident date cannot be in the future"}
	}
	if v := s.cat.ValidateClaimAmount(s.policy.ID, d.ClaimAmount); !v.Valid {
		return &ValidationError{Field: "claimAmount", Message: v.Message}
	}
	s.details = d
	s.detailsSet = true
	if s.step < StepDocuments {
		s.step = StepDocuments
	}
	return nil
}

// AddDocuments stages uploaded file names. Acceptance is partial: valid
// files are kept even when the same batch contains rejected ones, and the
// returned error names every rejected file.
func (s *Submission) AddDocuments(names ...string) (int, error) {
	if s.claimType == nil {
		return 0, &ValidationError{Field: "claimType", Message: "select a policy and claim type first"}
	}
	var rejected []string
	added := 0
	for _, name := range names {
		if validDocFormat(name) {
			s.documents = append(s.documents, name)
			added++
		} else {
			rejected = append(rejected, name)
		}
	}
	if len(rejected) > 0 {
		return added, &DocumentFormatError{Rejected: rejected}
	}
	return added, nil
}

// RemoveDocument drops the staged document at the given index
func (s *Submission) RemoveDocument(index int) {
	if index < 0 || index >= len(s.documents) {
		return
	}
	s.documents = append(s.documents[:index], s.documents[index+1:]...)
}

func validDocFormat(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, valid := range refdata.ValidDocFormats {
		if ext == valid {
			return true
		}
	}
	return false
}

// Submit files the claim. All gates are re-checked here so a caller cannot
// skip steps. A persistence failure parks the flow at the failed step with
// every input intact; calling Submit again retries.
func (s *Submission) Submit() (*Receipt, error) {
	if s.step == StepSubmitted {
		return s.receipt, nil
	}
	if s.policy == nil {
		return nil, &ValidationError{Field: "policy", Message: "select a policy first"}
	}
	if s.claimType == nil {
		return nil, &ValidationError{Field: "claimType", Message: "select a claim type first"}
	}
	if !s.detailsSet {
		return nil, &ValidationError{Field: "details", Message: "incident details are required"}
	}
	if len(s.documents) == 0 {
		return nil, &ValidationError{Field: "documents", Message: "at least one document is required"}
	}

	s.step = StepSubmitting
	claim, err := s.repo.CreateClaim(s.policy.ID, s.claimType.ID, s.details, s.documents)
	if err != nil {
		s.step = StepFailed
		s.failure = err
		return nil, err
	}

	s.receipt = &Receipt{
		ClaimID:                claim.ID,
		Policy:                 *s.policy,
		ClaimType:              *s.claimType,
		ClaimAmount:            claim.ClaimAmount,
		ClaimPercentage:        s.cat.ClaimPercentage(s.policy.ID, claim.ClaimAmount),
		Documents:              append([]string{}, claim.Documents...),
		SubmissionDate:         claim.SubmissionDate,
		ExpectedSettlementDate: ExpectedSettlementDate(*claim),
		SettlementDays:         refdata.SettlementDays(claim.PolicyType),
		Status:                 claim.Status,
	}
	s.step = StepSubmitted
	s.failure = nil
	return s.receipt, nil
}

// Reset clears the flow back to the first step
func (s *Submission) Reset() {
	*s = Submission{repo: s.repo, cat: s.cat, step: StepSelectPolicy}
}
