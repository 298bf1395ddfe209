package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"ticketbooking/internal/domain/models"
	"ticketbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable booking summary.
type DocsService struct {
	RequestID string
	Now       func() time.Time
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// GenerateBookingSummary returns PDF bytes and a download filename. An empty reference marks the
// document as a preview; any other reference is printed as unverified.
func (s DocsService) GenerateBookingSummary(rec models.BookingRecord, reference string) ([]byte, string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = previewReference
	}
	utils.LogEvent(s.RequestID, "docs", "generate_summary", fmt.Sprintf("reference=%s", reference))
	return buildSummaryPDF(rec, reference, s.now())
}

func buildSummaryPDF(b models.BookingRecord, reference string, generatedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Summary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	for _, l := range summaryLines(b, reference) {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Special requests:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, summaryFooter(reference, generatedAt), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%s_%s.pdf", safeFilenamePart(reference), safeFilenamePart(b.Name))
	return buf.Bytes(), filename, nil
}

const previewReference = "PREVIEW"

func summaryLines(b models.BookingRecord, reference string) []string {
	ref := reference
	if ref != previewReference {
		ref += " (unverified)"
	}
	return []string{
		fmt.Sprintf("Reference       : %s", ref),
		fmt.Sprintf("Name            : %s", safe(b.Name, "-")),
		fmt.Sprintf("Email           : %s", safe(b.Email, "-")),
		fmt.Sprintf("Phone           : %s", safe(b.Phone, "-")),
		fmt.Sprintf("Tickets         : %d", b.Tickets),
		fmt.Sprintf("Date / Time     : %s %s", b.Date.String(), b.Time.String()),
		fmt.Sprintf("Payment         : %s", safe(string(b.Payment), "-")),
		fmt.Sprintf("Seat preference : %s", safe(string(b.Seat), "-")),
	}
}

func summaryFooter(reference string, generatedAt time.Time) string {
	out := "Generated " + utils.FormatDateTime(generatedAt) + ". This summary is not a ticket or a payment receipt."
	if reference != previewReference {
		out += " The reference was supplied with the request and has not been checked against submitted bookings."
	}
	return out
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}
