package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bimadesk/bimadesk/internal/refdata"
)

// listTimelines returns the IRDAI processing timelines for every policy type
func (r *Router) listTimelines(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"timelines": refdata.AllTimelines(),
	})
}

// getTimeline returns the IRDAI timeline of one policy type
func (r *Router) getTimeline(w http.ResponseWriter, req *http.Request) {
	policyType := mux.Vars(req)["policyType"]
	def, ok := refdata.Timeline(policyType)
	if !ok {
		respondError(w, http.StatusNotFound, "No timeline for this policy type")
		return
	}
	respondJSON(w, http.StatusOK, def)
}

// getFilters returns the reference data the tracking dashboard renders:
// filter rows, status styles and the canonical stage order.
func (r *Router) getFilters(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"policyFilters": refdata.PolicyFilters,
		"statusFilters": refdata.StatusFilters,
		"stages":        refdata.StageOrder,
		"docFormats":    refdata.ValidDocFormats,
	})
}
