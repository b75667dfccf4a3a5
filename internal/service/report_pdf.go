package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"intervia-backend/internal/model"
)

// RenderInterviewPDF renders a persisted interview summary as a one-page
// PDF for download.
func RenderInterviewPDF(interview *model.Interview) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "Interview Report")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Session: %s", interview.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", interview.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 9, fmt.Sprintf("Overall Score: %.1f%%", interview.OverallScorePercentage))
	pdf.Ln(12)

	writeSection := func(title string, items []string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		if len(items) == 0 {
			pdf.MultiCell(0, 6, "None recorded.", "", "L", false)
		}
		for _, item := range items {
			pdf.MultiCell(0, 6, "- "+item, "", "L", false)
		}
		pdf.Ln(4)
	}

	writeSection("Strengths", interview.Strengths)
	writeSection("Weaknesses", interview.Weaknesses)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Study Plan")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	summary := interview.StudyPlanSummary
	if summary == "" {
		summary = "No study plan recorded."
	}
	pdf.MultiCell(0, 6, summary, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
