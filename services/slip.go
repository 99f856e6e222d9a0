package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"cmu-health/models"
)

// Slip renders a one-page PDF of a booking confirmation.
func (s *BookingService) Slip(conf models.Confirmation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(128, 0, 0)
	pdf.CellFormat(0, 10, "CMU Health Care System", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Appointment Confirmation", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Confirmation ID", conf.ID.String())
	addDetail(pdf, "Department", conf.Department)
	addDetail(pdf, "Doctor", conf.Doctor)
	addDetail(pdf, "Time", conf.Time)
	addDetail(pdf, "Booked at", conf.BookedAt.Format("2006-01-02 15:04 MST"))

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, conf.Message+". Please arrive ten minutes before your slot.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render confirmation slip: %w", err)
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 8, label+":", "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "L", false, 0, "")
}
