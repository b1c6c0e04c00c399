package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bimadesk/bimadesk/internal/services/pdfgen"
)

// downloadClaimPDF streams the claim summary PDF
func (r *Router) downloadClaimPDF(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	claim := r.findClaim(id)
	if claim == nil {
		respondError(w, http.StatusNotFound, "Claim not found")
		return
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	pdfBytes, err := pdfgen.GenerateClaimSummary(pdfgen.SummaryInput{
		Claim:           *claim,
		Policy:          r.catalog.PolicyByID(claim.PolicyID),
		TrackingBaseURL: fmt.Sprintf("%s://%s/track", scheme, req.Host),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate PDF: %v", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"claim_%s.pdf\"", claim.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))

	w.Write(pdfBytes)
}
