package claims

import (
	"strings"

	"github.com/bimadesk/bimadesk/internal/models"
)

// Summary is the dashboard statistics block computed over a claim list
type Summary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Settled    int `json:"settled"`

	TotalClaimedAmount float64 `json:"totalClaimedAmount"`
	TotalSettledAmount float64 `json:"totalSettledAmount"`
}

// inProgressStatuses are the statuses between submission and a decision
var inProgressStatuses = map[models.Status]bool{
	models.StatusPending:              true,
	models.StatusDocumentVerification: true,
	models.StatusUnderReview:          true,
	models.StatusInvestigation:        true,
}

// IsTerminal reports whether a claim can no longer change status
func IsTerminal(status models.Status) bool {
	return status == models.StatusRejected || status == models.StatusSettled
}

// ActiveCount counts claims that have not reached a terminal status
func ActiveCount(claims []models.Claim) int {
	n := 0
	for _, c := range claims {
		if !IsTerminal(c.Status) {
			n++
		}
	}
	return n
}

// TotalClaimedAmount sums the claimed amounts of all claims
func TotalClaimedAmount(claims []models.Claim) float64 {
	var total float64
	for _, c := range claims {
		total += c.ClaimAmount
	}
	return total
}

// SettledAmount sums the payouts of settled claims. Only Settled counts;
// an approved claim has a sanctioned amount but no payout yet, and a
// settled claim with no recorded approved amount contributes nothing.
func SettledAmount(claims []models.Claim) float64 {
	var total float64
	for _, c := range claims {
		if c.Status != models.StatusSettled {
			continue
		}
		if c.ApprovedAmount != nil {
			total += *c.ApprovedAmount
		}
	}
	return total
}

// Statistics computes the full dashboard summary in one pass
func Statistics(claims []models.Claim) Summary {
	s := Summary{Total: len(claims)}
	for _, c := range claims {
		s.TotalClaimedAmount += c.ClaimAmount
		switch {
		case inProgressStatuses[c.Status]:
			s.InProgress++
			if c.Status == models.StatusPending {
				s.Pending++
			}
		case c.Status == models.StatusApproved:
			s.Approved++
		case c.Status == models.StatusRejected:
			s.Rejected++
		case c.Status == models.StatusSettled:
			s.Settled++
			if c.ApprovedAmount != nil {
				s.TotalSettledAmount += *c.ApprovedAmount
			}
		}
	}
	return s
}

// FilterOptions narrows a claim list for the tracking view. Zero values and
// the literal "all" leave a dimension unfiltered.
type FilterOptions struct {
	PolicyType string
	Status     models.Status
	Search     string
}

// Filter applies the options to a claim list, preserving order. The search
// term matches claim id, claim type and description, case-insensitive.
func Filter(claims []models.Claim, opts FilterOptions) []models.Claim {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	out := make([]models.Claim, 0, len(claims))
	for _, c := range claims {
		if opts.PolicyType != "" && opts.PolicyType != "all" && c.PolicyType != opts.PolicyType {
			continue
		}
		if opts.Status != "" && opts.Status != "all" && c.Status != opts.Status {
			continue
		}
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesSearch(c models.Claim, search string) bool {
	return strings.Contains(strings.ToLower(c.ID), search) ||
		strings.Contains(strings.ToLower(c.ClaimType), search) ||
		strings.Contains(strings.ToLower(c.Description), search)
}
