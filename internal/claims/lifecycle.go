package claims

import (
	"time"

	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/refdata"
)

// Event is an adjuster action that moves a claim through its lifecycle
type Event string

const (
	EventVerifyDocuments   Event = "verify_documents"
	EventStartReview       Event = "start_review"
	EventOpenInvestigation Event = "open_investigation"
	EventApprove           Event = "approve"
	EventReject            Event = "reject"
	EventSettle            Event = "settle"
)

// transitions maps (current status, event) to the next status. Anything not
// listed is an invalid transition. Rejection is reachable from every
// non-terminal status except Approved, which can only settle.
var transitions = map[models.Status]map[Event]models.Status{
	models.StatusPending: {
		EventVerifyDocuments: models.StatusDocumentVerification,
		EventReject:          models.StatusRejected,
	},
	models.StatusDocumentVerification: {
		EventStartReview: models.StatusUnderReview,
		EventReject:      models.StatusRejected,
	},
	models.StatusUnderReview: {
		EventOpenInvestigation: models.StatusInvestigation,
		EventApprove:           models.StatusApproved,
		EventReject:            models.StatusRejected,
	},
	models.StatusInvestigation: {
		EventApprove: models.StatusApproved,
		EventReject:  models.StatusRejected,
	},
	models.StatusApproved: {
		EventSettle: models.StatusSettled,
	},
}

// stageForStatus names the timeline stage stamped when a status is reached.
// Pending is not listed; its submitted stamp is written at creation.
var stageForStatus = map[models.Status]string{
	models.StatusDocumentVerification: models.StageVerified,
	models.StatusUnderReview:          models.StageReviewed,
	models.StatusInvestigation:        models.StageInvestigation,
	models.StatusApproved:             models.StageApproved,
	models.StatusRejected:             models.StageRejected,
	models.StatusSettled:              models.StageSettled,
}

// TransitionDetail carries the event-specific inputs of a transition
type TransitionDetail struct {
	// ApprovedAmount is the sanctioned payout for an approve event. When
	// nil the full claimed amount is sanctioned.
	ApprovedAmount *float64

	// RejectionReason is recorded on a reject event
	RejectionReason string
}

// CanTransition reports whether the event is allowed from the status
func CanTransition(from models.Status, event Event) bool {
	_, ok := transitions[from][event]
	return ok
}

// AllowedEvents lists the events valid from the given status
func AllowedEvents(from models.Status) []Event {
	ordered := []Event{
		EventVerifyDocuments, EventStartReview, EventOpenInvestigation,
		EventApprove, EventReject, EventSettle,
	}
	var out []Event
	for _, e := range ordered {
		if CanTransition(from, e) {
			out = append(out, e)
		}
	}
	return out
}

// Transition applies a lifecycle event to the claim in place: the status
// advances and the matching timeline stage is stamped with the given date
// (today when empty). Approve records the sanctioned amount, reject the
// reason. The claim is untouched on error.
func Transition(c *models.Claim, event Event, date string, detail TransitionDetail) error {
	next, ok := transitions[c.Status][event]
	if !ok {
		return &TransitionError{From: c.Status, Event: event}
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	c.Status = next
	tl := c.TimelineMap()
	if stage, ok := stageForStatus[next]; ok {
		tl[stage] = date
	}
	c.SetTimeline(tl)

	switch event {
	case EventApprove:
		if detail.ApprovedAmount != nil {
			c.ApprovedAmount = detail.ApprovedAmount
		} else {
			amount := c.ClaimAmount
			c.ApprovedAmount = &amount
		}
	case EventReject:
		if detail.RejectionReason != "" {
			reason := detail.RejectionReason
			c.RejectionReason = &reason
		}
	}
	return nil
}

// ExpectedSettlementDate projects the IRDAI settlement deadline from the
// claim's submission date. An unparseable submission date falls back to
// today as the anchor.
func ExpectedSettlementDate(c models.Claim) string {
	anchor, err := time.Parse("2006-01-02", c.SubmissionDate)
	if err != nil {
		anchor = time.Now()
	}
	days := refdata.SettlementDays(c.PolicyType)
	return anchor.AddDate(0, 0, days).Format("2006-01-02")
}

// StageDate is one reached timeline stage with its date, for display
type StageDate struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Date  string `json:"date"`
}

// ReachedStages returns the claim's timeline as dated stages in canonical
// order, skipping stages the claim never reached.
func ReachedStages(c models.Claim) []StageDate {
	tl := c.TimelineMap()
	var out []StageDate
	for _, stage := range refdata.StageOrder {
		if date, ok := tl[stage.Key]; ok {
			out = append(out, StageDate{Key: stage.Key, Label: stage.Label, Date: date})
		}
	}
	return out
}
