package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/refdata"
)

// Summarizer produces short adjuster-style briefings for a claim
type Summarizer struct {
	client *GeminiClient
}

// NewSummarizer wraps a Gemini client. A nil client yields a nil summarizer,
// which callers treat as "feature off".
func NewSummarizer(client *GeminiClient) *Summarizer {
	if client == nil {
		return nil
	}
	return &Summarizer{client: client}
}

// Summarize asks the model for a plain-language briefing of the claim
func (s *Summarizer) Summarize(ctx context.Context, c models.Claim) (string, error) {
	prompt := buildClaimPrompt(c)
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarizing claim %s: %w", c.ID, err)
	}
	return strings.TrimSpace(text), nil
}

func buildClaimPrompt(c models.Claim) string {
	var b strings.Builder
	b.WriteString("You are an insurance claims assistant. Summarize the following claim ")
	b.WriteString("for a claims adjuster in at most four sentences. Mention the claim amount, ")
	b.WriteString("current status and anything unusual. Do not invent details.\n\n")

	fmt.Fprintf(&b, "Claim ID: %s\n", c.ID)
	fmt.Fprintf(&b, "Policy: %s (%s)\n", c.PolicyID, refdata.LabelFor(c.PolicyType))
	fmt.Fprintf(&b, "Claim type: %s\n", c.ClaimType)
	fmt.Fprintf(&b, "Claimed: Rs %.0f of Rs %.0f sum insured (%.2f%%)\n",
		c.ClaimAmount, c.SumInsured, claims.Percentage(c))
	fmt.Fprintf(&b, "Status: %s\n", c.Status)
	fmt.Fprintf(&b, "Incident date: %s, submitted: %s\n", c.IncidentDate, c.SubmissionDate)
	if c.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", c.Location)
	}
	if c.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", c.Description)
	}
	if c.ApprovedAmount != nil {
		fmt.Fprintf(&b, "Approved amount: Rs %.0f\n", *c.ApprovedAmount)
	}
	if c.RejectionReason != nil {
		fmt.Fprintf(&b, "Rejection reason: %s\n", *c.RejectionReason)
	}
	if stages := claims.ReachedStages(c); len(stages) > 0 {
		b.WriteString("Timeline:\n")
		for _, st := range stages {
			fmt.Fprintf(&b, "  %s: %s\n", st.Label, st.Date)
		}
	}
	return b.String()
}
