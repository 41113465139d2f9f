// Package receipt renders a one-page booking receipt PDF.
package receipt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/splus/splus-api/internal/pkg/qr"
)

// Line is one priced row on the receipt.
type Line struct {
	Label    string
	Quantity int
	Amount   float64
}

// Receipt is everything printed on the PDF.
type Receipt struct {
	BookingID     string
	Status        string
	CustomerName  string
	CustomerEmail string
	StudioName    string
	StartTime     time.Time
	EndTime       time.Time
	Lines         []Line
	Subtotal      float64
	PromoCode     string
	Discount      float64
	Total         float64
	PaymentStatus string
	// VerifyURL is encoded in the QR block when set.
	VerifyURL string
	IssuedAt  time.Time
}

const maxLines = 14

// Render builds the PDF.
func Render(rc Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "S+ STUDIO BOOKING RECEIPT")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	// Summary + QR
	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	summary := []string{
		"Booking ID: " + rc.BookingID,
		"Status: " + rc.Status,
		"Customer: " + rc.CustomerName,
		"Email: " + rc.CustomerEmail,
	}
	for _, s := range summary {
		pdf.SetX(20)
		pdf.Cell(0, 8, tr(s))
		pdf.Ln(6)
	}

	if rc.VerifyURL != "" {
		png, err := qr.PNG(rc.VerifyURL, qr.DefaultSize)
		if err != nil {
			return nil, err
		}
		opts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, opts, 0, "")
	}

	pdf.SetY(yStart + 63)

	// Schedule
	drawSectionTitle(pdf, "SESSION")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr("Studio: "+rc.StudioName))
	pdf.Ln(6)
	pdf.Cell(0, 8, "From: "+formatTime(rc.StartTime))
	pdf.Ln(6)
	pdf.Cell(0, 8, "To: "+formatTime(rc.EndTime))
	pdf.Ln(10)

	// Lines
	drawSectionTitle(pdf, "CHARGES")
	pdf.SetFont("Helvetica", "", 12)
	for i, l := range rc.Lines {
		if i >= maxLines {
			pdf.Cell(0, 8, fmt.Sprintf("... and %d more items", len(rc.Lines)-maxLines))
			pdf.Ln(6)
			break
		}
		label := l.Label
		if l.Quantity > 1 {
			label = fmt.Sprintf("%s x%d", label, l.Quantity)
		}
		pdf.CellFormat(130, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, FormatVND(l.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)

	drawTotal(pdf, "Subtotal", rc.Subtotal, false)
	if rc.Discount > 0 {
		label := "Discount"
		if rc.PromoCode != "" {
			label += " (" + rc.PromoCode + ")"
		}
		drawTotal(pdf, label, -rc.Discount, false)
	}
	drawTotal(pdf, "Total", rc.Total, true)

	if rc.PaymentStatus != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 6, "Payment: "+rc.PaymentStatus)
	}

	// Footer
	issued := rc.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Issued "+formatTime(issued)+" - S+ Studio", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}

func drawTotal(pdf *gofpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 12)
	pdf.CellFormat(130, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, FormatVND(amount), "", 1, "R", false, 0, "")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

// FormatVND formats an amount with dot thousand separators, e.g. 1.250.000 VND.
func FormatVND(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatFloat(amount, 'f', 0, 64)

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	out := b.String() + " VND"
	if neg {
		out = "-" + out
	}
	return out
}
