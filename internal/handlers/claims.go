package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/refdata"
)

// CreateClaimRequest is the submission payload. Documents are file names;
// the portal stores metadata, not the binaries.
type CreateClaimRequest struct {
	PolicyID     string   `json:"policyId"`
	ClaimTypeID  string   `json:"claimTypeId"`
	IncidentDate string   `json:"incidentDate"`
	ClaimAmount  float64  `json:"claimAmount"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Documents    []string `json:"documents"`
}

// ClaimEventRequest applies one lifecycle event to a claim
type ClaimEventRequest struct {
	Event           string   `json:"event"`
	Date            string   `json:"date"`
	ApprovedAmount  *float64 `json:"approvedAmount"`
	RejectionReason string   `json:"rejectionReason"`
}

// listClaims returns submitted and demo claims, optionally filtered
func (r *Router) listClaims(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	opts := claims.FilterOptions{
		PolicyType: q.Get("policyType"),
		Status:     models.Status(q.Get("status")),
		Search:     q.Get("search"),
	}

	list := claims.Filter(r.repo.Combined(r.seed), opts)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"claims": list,
		"count":  len(list),
	})
}

// createClaim runs the guided submission flow in one request. The same
// gates apply as in the step-by-step flow; nothing can be skipped.
func (r *Router) createClaim(w http.ResponseWriter, req *http.Request) {
	var body CreateClaimRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	sub := claims.NewSubmission(r.repo, r.catalog)
	if err := sub.SelectPolicy(body.PolicyID); err != nil {
		respondSubmissionError(w, err)
		return
	}
	if err := sub.SelectClaimType(body.ClaimTypeID); err != nil {
		respondSubmissionError(w, err)
		return
	}
	if err := sub.SetDetails(claims.Details{
		IncidentDate: body.IncidentDate,
		ClaimAmount:  body.ClaimAmount,
		Description:  body.Description,
		Location:     body.Location,
	}); err != nil {
		respondSubmissionError(w, err)
		return
	}
	if _, err := sub.AddDocuments(body.Documents...); err != nil {
		// Partial acceptance does not apply to a one-shot API submission;
		// the caller must resend a clean document list.
		respondSubmissionError(w, err)
		return
	}

	receipt, err := sub.Submit()
	if err != nil {
		respondSubmissionError(w, err)
		return
	}

	r.hub.ClaimSubmitted(receipt.ClaimID, receipt)
	respondJSON(w, http.StatusCreated, receipt)
}

// getClaim returns one claim with its lifecycle context
func (r *Router) getClaim(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	claim := r.findClaim(id)
	if claim == nil {
		respondError(w, http.StatusNotFound, "Claim not found")
		return
	}

	response := map[string]interface{}{
		"claim":           claim,
		"stages":          claims.ReachedStages(*claim),
		"allowedEvents":   claims.AllowedEvents(claim.Status),
		"statusStyle":     refdata.StyleFor(claim.Status),
		"policyLabel":     refdata.LabelFor(claim.PolicyType),
		"claimPercentage": claims.Percentage(*claim),
	}
	if !claims.IsTerminal(claim.Status) {
		response["expectedSettlementDate"] = claims.ExpectedSettlementDate(*claim)
	}
	respondJSON(w, http.StatusOK, response)
}

// getClaimStats returns the dashboard summary over all visible claims
func (r *Router) getClaimStats(w http.ResponseWriter, req *http.Request) {
	combined := r.repo.Combined(r.seed)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"stats":       claims.Statistics(combined),
		"activeCount": claims.ActiveCount(combined),
	})
}

// applyClaimEvent advances a submitted claim through its lifecycle. Demo
// claims are read-only.
func (r *Router) applyClaimEvent(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var body ClaimEventRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	claim := r.repo.ByID(id)
	if claim == nil {
		if r.findClaim(id) != nil {
			respondError(w, http.StatusConflict, "Demo claims cannot be modified")
			return
		}
		respondError(w, http.StatusNotFound, "Claim not found")
		return
	}

	err := claims.Transition(claim, claims.Event(body.Event), body.Date, claims.TransitionDetail{
		ApprovedAmount:  body.ApprovedAmount,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		var te *claims.TransitionError
		if errors.As(err, &te) {
			respondError(w, http.StatusConflict, te.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.repo.Update(*claim); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to persist claim")
		return
	}

	r.hub.ClaimStatusChanged(claim.ID, string(claim.Status))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"claim":         claim,
		"allowedEvents": claims.AllowedEvents(claim.Status),
	})
}

// summarizeClaim returns an AI briefing of the claim for adjusters
func (r *Router) summarizeClaim(w http.ResponseWriter, req *http.Request) {
	if r.summarizer == nil {
		respondError(w, http.StatusServiceUnavailable, "Claim summariser is not configured")
		return
	}

	id := mux.Vars(req)["id"]
	claim := r.findClaim(id)
	if claim == nil {
		respondError(w, http.StatusNotFound, "Claim not found")
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), 30*time.Second)
	defer cancel()

	summary, err := r.summarizer.Summarize(ctx, *claim)
	if err != nil {
		respondError(w, http.StatusBadGateway, "Failed to generate summary")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"claimId": claim.ID,
		"summary": summary,
	})
}

// findClaim resolves an id against submitted claims first, then the seeds
func (r *Router) findClaim(id string) *models.Claim {
	if claim := r.repo.ByID(id); claim != nil {
		return claim
	}
	for i := range r.seed {
		if r.seed[i].ID == id {
			c := r.seed[i]
			return &c
		}
	}
	return nil
}

// respondSubmissionError maps domain errors onto HTTP statuses
func respondSubmissionError(w http.ResponseWriter, err error) {
	var ve *claims.ValidationError
	var dfe *claims.DocumentFormatError
	switch {
	case errors.Is(err, claims.ErrPolicyNotFound):
		respondError(w, http.StatusNotFound, "Policy not found")
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Error())
	case errors.As(err, &dfe):
		respondError(w, http.StatusBadRequest, dfe.Error())
	case errors.Is(err, claims.ErrIDSpaceExhausted):
		respondError(w, http.StatusServiceUnavailable, "Could not allocate a claim id, try again")
	default:
		respondError(w, http.StatusInternalServerError, "Failed to submit claim")
	}
}
