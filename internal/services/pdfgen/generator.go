// Package pdfgen renders downloadable claim summary PDFs with a QR code
// that links back to claim tracking.
package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/refdata"
)

// SummaryInput bundles everything the claim summary renders
type SummaryInput struct {
	Claim  models.Claim
	Policy *models.Policy

	// TrackingBaseURL prefixes the QR content, e.g. https://portal.example.com/track
	TrackingBaseURL string
}

// GenerateClaimSummary renders a one-page claim summary PDF
func GenerateClaimSummary(in SummaryInput) ([]byte, error) {
	c := in.Claim

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Claim Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Claim ID: %s", c.ID), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Policy section
	sectionHeader(pdf, "Policy Details")
	keyValue(pdf, "Policy Type", refdata.LabelFor(c.PolicyType))
	if in.Policy != nil {
		keyValue(pdf, "Policy Name", in.Policy.Name)
		keyValue(pdf, "Policy Number", in.Policy.PolicyNumber)
		keyValue(pdf, "Provider", in.Policy.Provider)
	}
	keyValue(pdf, "Sum Insured", formatRupees(c.SumInsured))
	pdf.Ln(3)

	// Claim section
	sectionHeader(pdf, "Claim Details")
	keyValue(pdf, "Claim Type", c.ClaimType)
	keyValue(pdf, "Claim Amount", formatRupees(c.ClaimAmount))
	if pct := claims.Percentage(c); pct > 0 {
		keyValue(pdf, "Share of Sum Insured", fmt.Sprintf("%.2f%%", pct))
	}
	keyValue(pdf, "Status", string(c.Status))
	if c.ApprovedAmount != nil {
		keyValue(pdf, "Approved Amount", formatRupees(*c.ApprovedAmount))
	}
	if c.RejectionReason != nil {
		keyValue(pdf, "Rejection Reason", *c.RejectionReason)
	}
	keyValue(pdf, "Incident Date", c.IncidentDate)
	keyValue(pdf, "Submission Date", c.SubmissionDate)
	keyValue(pdf, "Location", c.Location)
	if !claims.IsTerminal(c.Status) {
		keyValue(pdf, "Expected Settlement", claims.ExpectedSettlementDate(c))
	}
	pdf.Ln(3)

	// Description
	if c.Description != "" {
		sectionHeader(pdf, "Description")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, c.Description, "", "L", false)
		pdf.Ln(3)
	}

	// Timeline
	stages := claims.ReachedStages(c)
	if len(stages) > 0 {
		sectionHeader(pdf, "Timeline")
		for _, stage := range stages {
			keyValue(pdf, stage.Label, stage.Date)
		}
		pdf.Ln(3)
	}

	// Documents
	if len(c.Documents) > 0 {
		sectionHeader(pdf, "Submitted Documents")
		pdf.SetFont("Arial", "", 10)
		for i, doc := range c.Documents {
			pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s", i+1, doc), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Tracking QR code in the bottom right corner
	if in.TrackingBaseURL != "" {
		qrContent := fmt.Sprintf("%s/%s", in.TrackingBaseURL, c.ID)
		qrPng, err := qrcode.Encode(qrContent, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("generating tracking QR: %w", err)
		}

		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("tracking_qr", opts, bytes.NewReader(qrPng))
		pdf.ImageOptions("tracking_qr", 165, 252, 30, 30, false, opts, 0, "")

		pdf.SetXY(15, 270)
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(140, 4, "Scan the code to track this claim online.", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 7, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func keyValue(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(55, 5, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, value, "", "L", false)
}

// formatRupees renders an amount with the Rs prefix and no decimals
func formatRupees(amount float64) string {
	return fmt.Sprintf("Rs %.0f", amount)
}
