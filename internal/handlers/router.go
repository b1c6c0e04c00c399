package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bimadesk/bimadesk/internal/ai"
	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/config"
	"github.com/bimadesk/bimadesk/internal/database"
	"github.com/bimadesk/bimadesk/internal/middleware"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/websocket"
)

// Router wraps the mux router with the portal's dependencies
type Router struct {
	*mux.Router
	db         *database.DB
	cfg        *config.Config
	catalog    *catalog.Store
	repo       *claims.Repository
	seed       []models.Claim
	hub        *websocket.Hub
	summarizer *ai.Summarizer
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, cat *catalog.Store, repo *claims.Repository, seed []models.Claim, hub *websocket.Hub, summarizer *ai.Summarizer) *Router {
	r := &Router{
		Router:     mux.NewRouter(),
		db:         db,
		cfg:        cfg,
		catalog:    cat,
		repo:       repo,
		seed:       seed,
		hub:        hub,
		summarizer: summarizer,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", r.getStatus).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/login", r.login).Methods("POST")
	auth.HandleFunc("/logout", r.logout).Methods("POST")
	auth.HandleFunc("/forgot-password", r.forgotPassword).Methods("POST")
	auth.HandleFunc("/verify-otp", r.verifyOTP).Methods("POST")
	auth.HandleFunc("/reset-password", r.resetPassword).Methods("POST")

	// Catalog routes (public, read-only)
	api.HandleFunc("/policies", r.listPolicies).Methods("GET")
	api.HandleFunc("/policies/{id}", r.getPolicy).Methods("GET")
	api.HandleFunc("/policies/{id}/claim-types", r.getClaimTypes).Methods("GET")
	api.HandleFunc("/policies/{id}/validate-amount", r.validateAmount).Methods("POST")
	api.HandleFunc("/timelines", r.listTimelines).Methods("GET")
	api.HandleFunc("/timelines/{policyType}", r.getTimeline).Methods("GET")
	api.HandleFunc("/filters", r.getFilters).Methods("GET")

	// Claim routes (protected)
	authn := middleware.Auth(cfg)
	claimsAPI := api.PathPrefix("/claims").Subrouter()
	claimsAPI.Use(authn)
	claimsAPI.HandleFunc("", r.listClaims).Methods("GET")
	claimsAPI.HandleFunc("", r.createClaim).Methods("POST")
	claimsAPI.HandleFunc("/stats", r.getClaimStats).Methods("GET")
	claimsAPI.HandleFunc("/{id}", r.getClaim).Methods("GET")
	claimsAPI.HandleFunc("/{id}/events", r.applyClaimEvent).Methods("POST")
	claimsAPI.HandleFunc("/{id}/pdf", r.downloadClaimPDF).Methods("GET")
	claimsAPI.HandleFunc("/{id}/summary", r.summarizeClaim).Methods("GET")

	profile := api.PathPrefix("/profile").Subrouter()
	profile.Use(authn)
	profile.HandleFunc("", r.getProfile).Methods("GET")

	// Live claim feed
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWs(hub, w, req)
	})

	// Static frontend
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.FrontendDir)))

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"server": "local",
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"version": "1.0.0",
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
