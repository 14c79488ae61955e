package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/anchorfix/core"
)

// PDFRenderer renders the remap table as a PDF document using gofpdf.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the report into PDF bytes.
func (r *PDFRenderer) Render(report *core.RemapReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, "Anchor remap report", "", "L", false)
	pdf.Ln(2)

	// Report metadata.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	if report.Source != "" {
		pdf.MultiCell(0, 5, "Source: "+report.Source, "", "L", false)
	}
	pdf.MultiCell(0, 5, fmt.Sprintf("Prefix: %s    Generated: %s", report.Prefix, report.GeneratedAt), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if len(report.Entries) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "No anchorable elements found.", "", "L", false)
	}

	// One row per assignment: tag, old → new, then the heading label.
	for i, e := range report.Entries {
		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("%4d  <%s %s>  %s -> %s", i+1, e.Tag, e.Attr, e.OldID, e.NewID), "", "L", false)

		if label := labelFromHTML(e.LabelHTML); label != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "      "+label, "", "L", false)
		}
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
