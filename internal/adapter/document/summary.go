// Package document renders booking documents as PDF.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/flight-search/flight-booking-system/internal/domain"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
)

// ContentType is the MIME type of rendered documents.
const ContentType = "application/pdf"

// SummaryRenderer renders the fare summary of a booking.
type SummaryRenderer struct {
	clock timeutil.Clock
}

// NewSummaryRenderer creates a renderer. A nil clock uses system time.
func NewSummaryRenderer(clock timeutil.Clock) *SummaryRenderer {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &SummaryRenderer{clock: clock}
}

// Filename returns the download name for a summary.
func (r *SummaryRenderer) Filename(s domain.BookingSummary) string {
	return fmt.Sprintf("fare-summary-%s-%s-%s.pdf",
		strings.ToLower(s.SearchParams.Origin),
		strings.ToLower(s.SearchParams.Destination),
		safeFilenamePart(s.Flight.FlightNumber))
}

// Render builds a one page A4 PDF with the itinerary, passengers and fare lines.
func (r *SummaryRenderer) Render(s domain.BookingSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Fare Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FARE SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+r.clock.Now().UTC().Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	section(pdf, "Flight")
	f := s.Flight
	p := s.SearchParams
	lines := []string{
		fmt.Sprintf("%s %s  (%s)", f.Airline, f.FlightNumber, safe(f.Aircraft, "-")),
		fmt.Sprintf("%s -> %s   %s", p.Origin, p.Destination, p.DepartureDate),
		fmt.Sprintf("Departs %s, arrives %s, %s, %s", f.DepartureTime, f.ArrivalTime, f.Duration, stopsLabel(f.Stops)),
		fmt.Sprintf("Cabin: %s   Trip: %s   Refundable: %s", p.CabinClass, p.TripType, yesNo(f.Refundable)),
	}
	if p.ReturnDate != nil {
		lines = append(lines, "Return: "+*p.ReturnDate)
	}
	for _, l := range lines {
		pdf.Cell(0, 6, tr(l))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(s.Passengers) > 0 {
		section(pdf, "Passengers")
		for i, pax := range s.Passengers {
			name := strings.TrimSpace(strings.Join([]string{pax.Title, pax.FirstName, pax.LastName}, " "))
			pdf.Cell(0, 6, tr(fmt.Sprintf("%d) %s  [%s]", i+1, safe(name, "-"), pax.Type.Label())))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	section(pdf, "Fare")
	fare := s.Fare
	cur := safe(fare.Currency, "USD")
	for _, l := range fare.Lines {
		amountRow(pdf, fmt.Sprintf("%s x %d", l.Type.Label(), l.Count), cur, l.Amount)
	}
	amountRow(pdf, "Subtotal", cur, fare.Subtotal)
	amountRow(pdf, "Tax (12%)", cur, fare.TaxAmount)
	amountRow(pdf, "Discount", cur, fare.DiscountAmount)
	amountRow(pdf, "Total", cur, fare.GrossTotal)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	amountRow(pdf, "Offer price", cur, fare.OfferTotal)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render fare summary: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func amountRow(pdf *gofpdf.Fpdf, label, currency string, amount float64) {
	pdf.CellFormat(120, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("%s %.2f", currency, amount), "", 1, "R", false, 0, "")
}

func stopsLabel(stops int) string {
	switch stops {
	case 0:
		return "direct"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "flight"
	}
	return b.String()
}
