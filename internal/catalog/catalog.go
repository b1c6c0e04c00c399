// Package catalog exposes the policy and claim-type catalog: read-only
// accessors over the seeded policy list, the claim types available per
// policy type and the documents each policy type requires. Lookups never
// fail hard; unknown ids and types yield nil/empty results.
package catalog

import (
	"fmt"
	"math"

	"github.com/bimadesk/bimadesk/internal/models"
)

// ClaimTypeDefinition describes one claim type selectable for a policy type
type ClaimTypeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// claimTypeGroup bundles the claim types and required documents of one
// policy type.
type claimTypeGroup struct {
	Types        []ClaimTypeDefinition
	RequiredDocs []string
}

// AmountValidation is the outcome of checking a claim amount against a policy
type AmountValidation struct {
	Valid      bool    `json:"valid"`
	Message    string  `json:"message,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

// PolicyDetail is a policy joined with its claim types and required documents
type PolicyDetail struct {
	models.Policy
	ClaimTypes   []ClaimTypeDefinition `json:"claimTypes"`
	RequiredDocs []string              `json:"requiredDocs"`
}

// Store provides read access to the policy catalog. Policies are fixed at
// construction; claim-type data is static package data.
type Store struct {
	policies []models.Policy
	byID     map[string]*models.Policy
}

// New builds a catalog store over the given policy list, preserving order
func New(policies []models.Policy) *Store {
	s := &Store{
		policies: policies,
		byID:     make(map[string]*models.Policy, len(policies)),
	}
	for i := range s.policies {
		s.byID[s.policies[i].ID] = &s.policies[i]
	}
	return s
}

// Default builds a catalog store over the built-in seed policies
func Default() *Store {
	return New(SeedPolicies())
}

// AllPolicies returns the full policy list in stable seed order
func (s *Store) AllPolicies() []models.Policy {
	return s.policies
}

// PolicyByID returns the policy with the given id, or nil
func (s *Store) PolicyByID(id string) *models.Policy {
	return s.byID[id]
}

// PoliciesByType returns all policies of the given type
func (s *Store) PoliciesByType(policyType string) []models.Policy {
	var out []models.Policy
	for _, p := range s.policies {
		if p.Type == policyType {
			out = append(out, p)
		}
	}
	return out
}

// PolicyWithClaimTypes returns a policy joined with its claim types and
// required documents, or nil when the id is unknown.
func (s *Store) PolicyWithClaimTypes(id string) *PolicyDetail {
	policy := s.PolicyByID(id)
	if policy == nil {
		return nil
	}
	return &PolicyDetail{
		Policy:       *policy,
		ClaimTypes:   ClaimTypesFor(policy.Type),
		RequiredDocs: RequiredDocuments(policy.Type),
	}
}

// ValidateClaimAmount checks a claim amount against the policy's sum insured
func (s *Store) ValidateClaimAmount(policyID string, amount float64) AmountValidation {
	policy := s.PolicyByID(policyID)
	if policy == nil {
		return AmountValidation{Valid: false, Message: "Policy not found"}
	}
	if amount <= 0 {
		return AmountValidation{Valid: false, Message: "Claim amount must be greater than 0"}
	}
	if amount > policy.SumInsured {
		return AmountValidation{
			Valid:   false,
			Message: fmt.Sprintf("Claim amount cannot exceed sum insured (Rs %.0f)", policy.SumInsured),
		}
	}
	return AmountValidation{Valid: true, Percentage: percentage(amount, policy.SumInsured)}
}

// ClaimPercentage returns the claim amount as a percentage of the policy's
// sum insured, rounded to two decimals. Zero when the policy is unknown or
// the amount is not positive.
func (s *Store) ClaimPercentage(policyID string, amount float64) float64 {
	policy := s.PolicyByID(policyID)
	if policy == nil || amount <= 0 {
		return 0
	}
	return percentage(amount, policy.SumInsured)
}

func percentage(amount, sumInsured float64) float64 {
	return math.Round(amount/sumInsured*100*100) / 100
}

// ClaimTypesFor returns the claim types selectable for a policy type.
// Unknown types get an empty list, never an error.
func ClaimTypesFor(policyType string) []ClaimTypeDefinition {
	if group, ok := claimTypes[policyType]; ok {
		return group.Types
	}
	return []ClaimTypeDefinition{}
}

// RequiredDocuments returns the documents a policy type requires for a claim
func RequiredDocuments(policyType string) []string {
	if group, ok := claimTypes[policyType]; ok {
		return group.RequiredDocs
	}
	return []string{}
}

// ClaimType returns a single claim type definition, or nil when either the
// policy type or the claim type id is unknown.
func ClaimType(policyType, claimTypeID string) *ClaimTypeDefinition {
	for _, ct := range ClaimTypesFor(policyType) {
		if ct.ID == claimTypeID {
			return &ct
		}
	}
	return nil
}
