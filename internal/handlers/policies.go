package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// listPolicies returns the customer's policy catalog
func (r *Router) listPolicies(w http.ResponseWriter, req *http.Request) {
	policies := r.catalog.AllPolicies()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"policies": policies,
		"count":    len(policies),
	})
}

// getPolicy returns one policy joined with its claim types and documents
func (r *Router) getPolicy(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	detail := r.catalog.PolicyWithClaimTypes(id)
	if detail == nil {
		respondError(w, http.StatusNotFound, "Policy not found")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

// getClaimTypes returns the claim types available for a policy
func (r *Router) getClaimTypes(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	detail := r.catalog.PolicyWithClaimTypes(id)
	if detail == nil {
		respondError(w, http.StatusNotFound, "Policy not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"claimTypes":   detail.ClaimTypes,
		"requiredDocs": detail.RequiredDocs,
	})
}

// validateAmount checks a proposed claim amount against the policy
func (r *Router) validateAmount(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if r.catalog.PolicyByID(id) == nil {
		respondError(w, http.StatusNotFound, "Policy not found")
		return
	}

	respondJSON(w, http.StatusOK, r.catalog.ValidateClaimAmount(id, body.Amount))
}
