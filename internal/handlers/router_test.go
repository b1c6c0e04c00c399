package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/config"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/utils"
	"github.com/bimadesk/bimadesk/internal/websocket"
)

func newTestRouter(t *testing.T) (*Router, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Env:       "test",
		JWTSecret: "test-secret-key-12345",
	}
	cat := catalog.Default()
	repo, err := claims.NewRepository(claims.NewMemoryStore(), cat)
	if err != nil {
		t.Fatalf("Failed to build repository: %v", err)
	}
	hub := websocket.NewHub()
	go hub.Run()

	// No database: the endpoints under test stay off the db path
	router := NewRouter(nil, cfg, cat, repo, catalog.SeedClaims(), hub, nil)
	return router, cfg
}

func bearerToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	user := &models.UserAccount{ID: "uuid-1234", Email: "test@example.com", Role: "customer"}
	access, _, err := utils.GenerateTokens(user, cfg)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return "Bearer " + access
}

func doJSON(t *testing.T, router *Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %s", body["status"])
	}
}

func TestListPolicies(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/policies", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Policies []models.Policy `json:"policies"`
		Count    int             `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Count != 6 || len(body.Policies) != 6 {
		t.Errorf("Expected 6 policies, got %d", body.Count)
	}
}

func TestGetPolicy(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/policies/POL-H-001", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/policies/NON_EXISTENT", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown policy, got %d", rec.Code)
	}
}

func TestValidateAmountEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/policies/POL-H-001/validate-amount", "",
		map[string]float64{"amount": 125000})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var v catalog.AmountValidation
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !v.Valid || v.Percentage != 25 {
		t.Errorf("Expected valid 25%%, got %+v", v)
	}

	rec = doJSON(t, router, "POST", "/api/policies/POL-H-001/validate-amount", "",
		map[string]float64{"amount": 999999999})
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if v.Valid {
		t.Error("Amount above sum insured must not validate")
	}
}

func TestTimelineEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/timelines", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/timelines/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, router, "GET", "/api/timelines/spaceship", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown policy type, got %d", rec.Code)
	}
}

func TestClaimsRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/claims", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(t, router, "GET", "/api/claims", "Bearer not-a-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for garbage token, got %d", rec.Code)
	}
}

func TestListClaims(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	rec := doJSON(t, router, "GET", "/api/claims", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Claims []models.Claim `json:"claims"`
		Count  int            `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Count != 3 {
		t.Errorf("Expected the 3 demo claims, got %d", body.Count)
	}

	rec = doJSON(t, router, "GET", "/api/claims?policyType=health", token, nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Count != 1 {
		t.Errorf("Expected 1 health demo claim, got %d", body.Count)
	}
}

func TestCreateClaimEndpoint(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	payload := CreateClaimRequest{
		PolicyID:     "POL-H-001",
		ClaimTypeID:  "surgery",
		IncidentDate: "2025-08-01",
		ClaimAmount:  125000,
		Description:  "Knee surgery at Apollo hospital",
		Location:     "Chennai, Tamil Nadu",
		Documents:    []string{"bill.pdf"},
	}

	rec := doJSON(t, router, "POST", "/api/claims", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var receipt claims.Receipt
	if err := json.Unmarshal(rec.Body.Bytes(), &receipt); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if receipt.ClaimID == "" || receipt.Status != models.StatusPending {
		t.Errorf("Unexpected receipt: %+v", receipt)
	}

	// The new claim leads the list
	rec = doJSON(t, router, "GET", "/api/claims", token, nil)
	var body struct {
		Claims []models.Claim `json:"claims"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Claims) != 4 || body.Claims[0].ID != receipt.ClaimID {
		t.Errorf("New claim must lead the list, got %v", body.Claims[0].ID)
	}
}

func TestCreateClaimRejectsBadInput(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	payload := CreateClaimRequest{
		PolicyID:     "POL-H-001",
		ClaimTypeID:  "surgery",
		IncidentDate: "2025-08-01",
		ClaimAmount:  125000,
		Description:  "Valid description",
		Documents:    []string{"malware.exe"},
	}
	rec := doJSON(t, router, "POST", "/api/claims", token, payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid document, got %d", rec.Code)
	}

	payload.Documents = nil
	rec = doJSON(t, router, "POST", "/api/claims", token, payload)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing documents, got %d", rec.Code)
	}

	payload.PolicyID = "NON_EXISTENT"
	payload.Documents = []string{"bill.pdf"}
	rec = doJSON(t, router, "POST", "/api/claims", token, payload)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown policy, got %d", rec.Code)
	}
}

func TestClaimEventEndpoint(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	payload := CreateClaimRequest{
		PolicyID:     "POL-C-002",
		ClaimTypeID:  "accident-damage",
		IncidentDate: "2025-08-10",
		ClaimAmount:  40000,
		Description:  "Rear bumper damage",
		Location:     "Pune",
		Documents:    []string{"fir.pdf"},
	}
	rec := doJSON(t, router, "POST", "/api/claims", token, payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Setup failed: %d", rec.Code)
	}
	var receipt claims.Receipt
	if err := json.Unmarshal(rec.Body.Bytes(), &receipt); err != nil {
		t.Fatal(err)
	}

	eventsPath := fmt.Sprintf("/api/claims/%s/events", receipt.ClaimID)
	rec = doJSON(t, router, "POST", eventsPath, token, ClaimEventRequest{Event: "verify_documents"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Settle straight from document verification is invalid
	rec = doJSON(t, router, "POST", eventsPath, token, ClaimEventRequest{Event: "settle"})
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409 for invalid transition, got %d", rec.Code)
	}

	// Demo claims are read-only
	rec = doJSON(t, router, "POST", "/api/claims/CLM-2025-2196/events", token,
		ClaimEventRequest{Event: "approve"})
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected 409 for demo claim, got %d", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/claims/CLM-0000-0000/events", token,
		ClaimEventRequest{Event: "approve"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown claim, got %d", rec.Code)
	}
}

func TestClaimStatsEndpoint(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	rec := doJSON(t, router, "GET", "/api/claims/stats", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Stats       claims.Summary `json:"stats"`
		ActiveCount int            `json:"activeCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	// Demo set: one settled, one under review, one rejected
	if body.Stats.Total != 3 || body.Stats.Settled != 1 || body.Stats.Rejected != 1 {
		t.Errorf("Unexpected stats: %+v", body.Stats)
	}
	if body.ActiveCount != 1 {
		t.Errorf("Expected 1 active demo claim, got %d", body.ActiveCount)
	}
}

func TestGetClaimEndpoint(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	rec := doJSON(t, router, "GET", "/api/claims/CLM-2025-1042", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Claim         models.Claim       `json:"claim"`
		AllowedEvents []string           `json:"allowedEvents"`
		Stages        []claims.StageDate `json:"stages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body.Claim.Status != models.StatusSettled {
		t.Errorf("Expected settled demo claim, got %s", body.Claim.Status)
	}
	if len(body.AllowedEvents) != 0 {
		t.Errorf("Settled claim must have no allowed events, got %v", body.AllowedEvents)
	}
	if len(body.Stages) != 5 {
		t.Errorf("Expected 5 reached stages, got %d", len(body.Stages))
	}

	rec = doJSON(t, router, "GET", "/api/claims/CLM-0000-0000", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestSummaryUnavailableWithoutAPIKey(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	rec := doJSON(t, router, "GET", "/api/claims/CLM-2025-1042/summary", token, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without summariser, got %d", rec.Code)
	}
}

func TestClaimPDFEndpoint(t *testing.T) {
	router, cfg := newTestRouter(t)
	token := bearerToken(t, cfg)

	rec := doJSON(t, router, "GET", "/api/claims/CLM-2025-1042/pdf", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected PDF content type, got %s", ct)
	}
	if rec.Body.Len() == 0 {
		t.Error("PDF body must not be empty")
	}
}
