package catalog

import (
	"testing"

	"github.com/bimadesk/bimadesk/internal/models"
)

func TestPolicyLookups(t *testing.T) {
	store := Default()

	all := store.AllPolicies()
	if len(all) != 6 {
		t.Fatalf("Expected 6 seed policies, got %d", len(all))
	}

	// Stable order: repeated calls return the same sequence
	again := store.AllPolicies()
	for i := range all {
		if all[i].ID != again[i].ID {
			t.Fatalf("Policy order not stable at index %d", i)
		}
	}

	policy := store.PolicyByID("POL-H-001")
	if policy == nil {
		t.Fatal("Expected to find POL-H-001")
	}
	if policy.Type != models.PolicyTypeHealth {
		t.Errorf("Expected health policy, got %s", policy.Type)
	}
	if policy.SumInsured <= 0 {
		t.Error("Sum insured must be positive")
	}

	if store.PolicyByID("NON_EXISTENT") != nil {
		t.Error("Unknown policy id should return nil")
	}

	health := store.PoliciesByType(models.PolicyTypeHealth)
	if len(health) != 1 {
		t.Errorf("Expected 1 health policy, got %d", len(health))
	}
}

func TestClaimTypesFor(t *testing.T) {
	types := ClaimTypesFor(models.PolicyTypeHealth)
	if len(types) == 0 {
		t.Fatal("Expected claim types for health")
	}

	// Unknown policy type yields an empty list, not an error
	if got := ClaimTypesFor("spaceship"); len(got) != 0 {
		t.Errorf("Expected empty list for unknown type, got %d entries", len(got))
	}

	ct := ClaimType(models.PolicyTypeHealth, "hospitalization")
	if ct == nil {
		t.Fatal("Expected hospitalization claim type")
	}
	if ct.Name != "Hospitalization" {
		t.Errorf("Unexpected name: %s", ct.Name)
	}

	if ClaimType(models.PolicyTypeHealth, "theft") != nil {
		t.Error("theft is not a health claim type")
	}
}

func TestRequiredDocuments(t *testing.T) {
	docs := RequiredDocuments(models.PolicyTypeMotorCar)
	if len(docs) == 0 {
		t.Fatal("Expected required documents for motor-car")
	}

	if got := RequiredDocuments("unknown"); len(got) != 0 {
		t.Errorf("Expected empty docs for unknown type, got %v", got)
	}
}

func TestPolicyWithClaimTypes(t *testing.T) {
	store := Default()

	detail := store.PolicyWithClaimTypes("POL-C-002")
	if detail == nil {
		t.Fatal("Expected detail for POL-C-002")
	}
	if len(detail.ClaimTypes) == 0 || len(detail.RequiredDocs) == 0 {
		t.Error("Detail should include claim types and required docs")
	}

	if store.PolicyWithClaimTypes("NON_EXISTENT") != nil {
		t.Error("Unknown policy should yield nil detail")
	}
}

func TestValidateClaimAmount(t *testing.T) {
	store := Default()

	if v := store.ValidateClaimAmount("NON_EXISTENT", 1000); v.Valid {
		t.Error("Unknown policy must not validate")
	}

	if v := store.ValidateClaimAmount("POL-H-001", 0); v.Valid {
		t.Error("Zero amount must not validate")
	}
	if v := store.ValidateClaimAmount("POL-H-001", -50); v.Valid {
		t.Error("Negative amount must not validate")
	}

	// Sum insured for POL-H-001 is 500000
	if v := store.ValidateClaimAmount("POL-H-001", 500001); v.Valid {
		t.Error("Amount above sum insured must not validate")
	}

	v := store.ValidateClaimAmount("POL-H-001", 125000)
	if !v.Valid {
		t.Fatalf("Expected valid amount, got message %q", v.Message)
	}
	if v.Percentage != 25 {
		t.Errorf("Expected 25%%, got %v", v.Percentage)
	}
}

func TestClaimPercentageRounding(t *testing.T) {
	store := Default()

	// 100000/800000 = 12.5%
	if pct := store.ClaimPercentage("POL-C-002", 100000); pct != 12.5 {
		t.Errorf("Expected 12.5, got %v", pct)
	}

	// 1/3 of 500000 rounds to two decimals
	if pct := store.ClaimPercentage("POL-H-001", 166666); pct != 33.33 {
		t.Errorf("Expected 33.33, got %v", pct)
	}

	if pct := store.ClaimPercentage("NON_EXISTENT", 1000); pct != 0 {
		t.Errorf("Expected 0 for unknown policy, got %v", pct)
	}
	if pct := store.ClaimPercentage("POL-H-001", 0); pct != 0 {
		t.Errorf("Expected 0 for zero amount, got %v", pct)
	}
}

func TestSeedClaims(t *testing.T) {
	claims := SeedClaims()
	if len(claims) != 3 {
		t.Fatalf("Expected 3 seed claims, got %d", len(claims))
	}

	for _, c := range claims {
		if c.ID == "" || c.PolicyID == "" {
			t.Errorf("Seed claim missing identifiers: %+v", c)
		}
		tl := c.TimelineMap()
		if _, ok := tl[models.StageSubmitted]; !ok {
			t.Errorf("Claim %s: timeline must include submitted stage", c.ID)
		}
	}
}
