// Package claims implements the claims domain: the repository of submitted
// claims, portfolio statistics, the guided submission flow and the claim
// lifecycle state machine.
package claims

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/models"
)

// maxIDAttempts bounds the collision retry loop in GenerateClaimID
const maxIDAttempts = 25

// Store persists the submitted-claims collection. The repository keeps the
// working copy in memory and writes through on every mutation.
type Store interface {
	Load() ([]models.Claim, error)
	Save(claims []models.Claim) error
}

// Repository holds the user-submitted claims, most recent first. Seed demo
// claims are not part of the repository; Combined merges them for display.
type Repository struct {
	mu      sync.RWMutex
	store   Store
	catalog *catalog.Store
	claims  []models.Claim
}

// NewRepository loads the persisted claims into a repository
func NewRepository(store Store, cat *catalog.Store) (*Repository, error) {
	claims, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading claims: %w", err)
	}
	log.Printf("📦 Loaded %d submitted claims", len(claims))
	return &Repository{store: store, catalog: cat, claims: claims}, nil
}

// All returns the submitted claims, most recent first
func (r *Repository) All() []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Claim, len(r.claims))
	copy(out, r.claims)
	return out
}

// Combined returns submitted claims followed by the given seed claims, so
// user submissions always lead the tracking list.
func (r *Repository) Combined(seed []models.Claim) []models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Claim, 0, len(r.claims)+len(seed))
	out = append(out, r.claims...)
	out = append(out, seed...)
	return out
}

// ByID returns the submitted claim with the given id, or nil
func (r *Repository) ByID(id string) *models.Claim {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.claims {
		if r.claims[i].ID == id {
			c := r.claims[i]
			return &c
		}
	}
	return nil
}

// GenerateClaimID produces a new id of the form CLM-<year>-<4 digits>.
// Collisions with existing submitted claims are retried; after maxIDAttempts
// misses the id space for this year is considered exhausted.
func (r *Repository) GenerateClaimID() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generateIDLocked()
}

func (r *Repository) generateIDLocked() (string, error) {
	year := time.Now().Year()
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := fmt.Sprintf("CLM-%d-%04d", year, rand.Intn(10000))
		if !r.hasIDLocked(id) {
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

func (r *Repository) hasIDLocked(id string) bool {
	for i := range r.claims {
		if r.claims[i].ID == id {
			return true
		}
	}
	return false
}

// Details carries the free-form inputs of a claim submission
type Details struct {
	IncidentDate string
	ClaimAmount  float64
	Description  string
	Location     string
}

// CreateClaim builds and stores a new claim against the given policy. The
// claim starts at Pending with a submitted timeline entry stamped today.
// Callers validate amounts and documents before reaching this point; only an
// unresolvable policy fails here (besides persistence).
func (r *Repository) CreateClaim(policyID, claimTypeID string, details Details, documents []string) (*models.Claim, error) {
	policy := r.catalog.PolicyByID(policyID)
	if policy == nil {
		return nil, ErrPolicyNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.generateIDLocked()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	claim := models.Claim{
		ID:             id,
		PolicyID:       policy.ID,
		PolicyType:     policy.Type,
		ClaimType:      claimTypeID,
		ClaimAmount:    details.ClaimAmount,
		SumInsured:     policy.SumInsured,
		Description:    details.Description,
		Location:       details.Location,
		IncidentDate:   details.IncidentDate,
		SubmissionDate: today,
		Documents:      append([]string{}, documents...),
		Status:         models.StatusPending,
	}
	claim.SetTimeline(models.Timeline{models.StageSubmitted: today})

	if err := r.addLocked(claim); err != nil {
		return nil, err
	}
	log.Printf("✅ Claim %s created for policy %s", claim.ID, policy.ID)
	return &claim, nil
}

// Add prepends a claim and persists the collection. On a persistence error
// the in-memory state is rolled back so a retry sees the pre-add collection.
func (r *Repository) Add(claim models.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(claim)
}

func (r *Repository) addLocked(claim models.Claim) error {
	r.claims = append([]models.Claim{claim}, r.claims...)
	if err := r.store.Save(r.claims); err != nil {
		r.claims = r.claims[1:]
		return fmt.Errorf("saving claims: %w", err)
	}
	return nil
}

// Update replaces the stored claim with the same id and persists
func (r *Repository) Update(claim models.Claim) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.claims {
		if r.claims[i].ID == claim.ID {
			previous := r.claims[i]
			r.claims[i] = claim
			if err := r.store.Save(r.claims); err != nil {
				r.claims[i] = previous
				return fmt.Errorf("saving claims: %w", err)
			}
			return nil
		}
	}
	return ErrClaimNotFound
}

// Count returns the number of submitted claims
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.claims)
}

// Percentage returns the claim amount as a share of the sum insured, rounded
// to two decimals, using the amounts denormalized onto the claim.
func Percentage(c models.Claim) float64 {
	if c.SumInsured <= 0 || c.ClaimAmount <= 0 {
		return 0
	}
	return math.Round(c.ClaimAmount/c.SumInsured*100*100) / 100
}
