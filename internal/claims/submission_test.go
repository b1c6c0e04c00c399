package claims

import (
	"errors"
	"testing"
	"time"

	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/models"
)

func newTestSubmission(t *testing.T) (*Submission, *MemoryStore) {
	t.Helper()
	repo, store := newTestRepository(t)
	return NewSubmission(repo, catalog.Default()), store
}

func validDetails() Details {
	return Details{
		IncidentDate: "2025-08-01",
		ClaimAmount:  125000,
		Description:  "Knee surgery at Apollo hospital",
		Location:     "Chennai, Tamil Nadu",
	}
}

func TestSubmissionHappyPath(t *testing.T) {
	sub, _ := newTestSubmission(t)

	if sub.Step() != StepSelectPolicy {
		t.Fatalf("New submission must start at select_policy, got %s", sub.Step())
	}

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatalf("SelectPolicy: %v", err)
	}
	if sub.Step() != StepSelectClaimType {
		t.Errorf("Expected select_claim_type, got %s", sub.Step())
	}

	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatalf("SelectClaimType: %v", err)
	}
	if err := sub.SetDetails(validDetails()); err != nil {
		t.Fatalf("SetDetails: %v", err)
	}
	if added, err := sub.AddDocuments("bill.pdf", "prescription.docx"); err != nil || added != 2 {
		t.Fatalf("AddDocuments: added=%d err=%v", added, err)
	}

	receipt, err := sub.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Step() != StepSubmitted {
		t.Errorf("Expected submitted step, got %s", sub.Step())
	}
	if receipt.Status != models.StatusPending {
		t.Errorf("Receipt status must be Pending, got %s", receipt.Status)
	}
	if receipt.ClaimPercentage != 25 {
		t.Errorf("Expected 25 percent, got %v", receipt.ClaimPercentage)
	}
	if receipt.SettlementDays != 30 {
		t.Errorf("Health claims settle in 30 days, got %d", receipt.SettlementDays)
	}
	want := time.Now().AddDate(0, 0, 30).Format("2006-01-02")
	if receipt.ExpectedSettlementDate != want {
		t.Errorf("Expected settlement date %s, got %s", want, receipt.ExpectedSettlementDate)
	}
	if len(receipt.Documents) != 2 {
		t.Errorf("Expected 2 documents on receipt, got %d", len(receipt.Documents))
	}
}

func TestSelectPolicyUnknown(t *testing.T) {
	sub, _ := newTestSubmission(t)
	if err := sub.SelectPolicy("NON_EXISTENT"); !errors.Is(err, ErrPolicyNotFound) {
		t.Errorf("Expected ErrPolicyNotFound, got %v", err)
	}
	if sub.Step() != StepSelectPolicy {
		t.Errorf("Step must not advance, got %s", sub.Step())
	}
}

func TestChangingPolicyResetsClaimType(t *testing.T) {
	sub, _ := newTestSubmission(t)

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}

	// theft is a motor claim type, not valid for health
	if err := sub.SelectClaimType("theft"); err == nil {
		t.Error("Expected claim type mismatch error")
	}

	if err := sub.SelectPolicy("POL-C-002"); err != nil {
		t.Fatal(err)
	}
	if sub.ClaimType() != nil {
		t.Error("Changing policy must discard the claim type selection")
	}
	if err := sub.SelectClaimType("theft"); err != nil {
		t.Errorf("theft must be valid for motor-car: %v", err)
	}
}

func TestSetDetailsValidation(t *testing.T) {
	sub, _ := newTestSubmission(t)

	// Details before a claim type is selected
	if err := sub.SetDetails(validDetails()); err == nil {
		t.Error("Expected gate error before policy selection")
	}

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}

	d := validDetails()
	d.Description = "  "
	if err := sub.SetDetails(d); err == nil {
		t.Error("Blank description must not validate")
	}

	d = validDetails()
	d.IncidentDate = "01/08/2025"
	if err := sub.SetDetails(d); err == nil {
		t.Error("Malformed incident date must not validate")
	}

	d = validDetails()
	d.IncidentDate = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	if err := sub.SetDetails(d); err == nil {
		t.Error("Future incident date must not validate")
	}

	// Sum insured for POL-H-001 is 500000
	d = validDetails()
	d.ClaimAmount = 600000
	err := sub.SetDetails(d)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "claimAmount" {
		t.Errorf("Expected claimAmount validation error, got %v", err)
	}

	if err := sub.SetDetails(validDetails()); err != nil {
		t.Fatalf("Valid details rejected: %v", err)
	}
	if sub.Step() != StepDocuments {
		t.Errorf("Expected documents step, got %s", sub.Step())
	}
}

func TestAddDocumentsPartialAcceptance(t *testing.T) {
	sub, _ := newTestSubmission(t)
	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}

	added, err := sub.AddDocuments("bill.pdf", "virus.exe", "summary.docx")
	if added != 2 {
		t.Errorf("Expected 2 accepted documents, got %d", added)
	}
	var dfe *DocumentFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("Expected DocumentFormatError, got %v", err)
	}
	if len(dfe.Rejected) != 1 || dfe.Rejected[0] != "virus.exe" {
		t.Errorf("Expected virus.exe rejected, got %v", dfe.Rejected)
	}

	docs := sub.Documents()
	if len(docs) != 2 || docs[0] != "bill.pdf" || docs[1] != "summary.docx" {
		t.Errorf("Valid files must survive a mixed batch, got %v", docs)
	}

	// Extension check is case-insensitive
	if added, err := sub.AddDocuments("report.PDF"); err != nil || added != 1 {
		t.Errorf("Uppercase extension must be accepted: added=%d err=%v", added, err)
	}

	sub.RemoveDocument(0)
	docs = sub.Documents()
	if len(docs) != 2 || docs[0] != "summary.docx" {
		t.Errorf("Unexpected documents after removal: %v", docs)
	}

	// Out-of-range removals are ignored
	sub.RemoveDocument(99)
	sub.RemoveDocument(-1)
	if len(sub.Documents()) != 2 {
		t.Error("Out-of-range removal must be a no-op")
	}
}

func TestSubmitGates(t *testing.T) {
	sub, _ := newTestSubmission(t)

	if _, err := sub.Submit(); err == nil {
		t.Error("Submit without a policy must fail")
	}

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.Submit(); err == nil {
		t.Error("Submit without a claim type must fail")
	}

	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.Submit(); err == nil {
		t.Error("Submit without details must fail")
	}

	if err := sub.SetDetails(validDetails()); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.Submit(); err == nil {
		t.Error("Submit without documents must fail")
	}
}

func TestSubmitRetryAfterFailure(t *testing.T) {
	sub, store := newTestSubmission(t)

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SetDetails(validDetails()); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.AddDocuments("bill.pdf"); err != nil {
		t.Fatal(err)
	}

	store.FailNextSave(errors.New("disk full"))
	if _, err := sub.Submit(); err == nil {
		t.Fatal("Expected submit to fail")
	}
	if sub.Step() != StepFailed {
		t.Errorf("Expected failed step, got %s", sub.Step())
	}
	if sub.Failure() == nil {
		t.Error("Failure must be recorded")
	}
	if len(sub.Documents()) != 1 {
		t.Error("Staged inputs must survive a failed submit")
	}

	// Clearing the fault and retrying succeeds with the same inputs
	store.FailNextSave(nil)
	receipt, err := sub.Submit()
	if err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if receipt == nil || sub.Step() != StepSubmitted {
		t.Errorf("Expected successful retry, step %s", sub.Step())
	}
	if sub.Failure() != nil {
		t.Error("Failure must clear on success")
	}
}

func TestReset(t *testing.T) {
	sub, _ := newTestSubmission(t)

	if err := sub.SelectPolicy("POL-H-001"); err != nil {
		t.Fatal(err)
	}
	if err := sub.SelectClaimType("surgery"); err != nil {
		t.Fatal(err)
	}
	if _, err := sub.AddDocuments("bill.pdf"); err != nil {
		t.Fatal(err)
	}

	sub.Reset()
	if sub.Step() != StepSelectPolicy {
		t.Errorf("Reset must return to select_policy, got %s", sub.Step())
	}
	if sub.Policy() != nil || sub.ClaimType() != nil || len(sub.Documents()) != 0 {
		t.Error("Reset must clear all staged input")
	}
}
