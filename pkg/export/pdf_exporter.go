package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 277.0 // A4 landscape minus margins
	rowHeight  = 7.0
	headHeight = 8.0
)

// PDFExporter renders datasets into a landscape tabular PDF with one table per section.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with a title block and one table per section.
func (e *PDFExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	widths := columnWidths(data.Headers, data.Widths)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if data.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(data.Title), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
	for _, line := range data.Subtitle {
		pdf.CellFormat(0, 6, tr(line), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range data.Headers {
			pdf.CellFormat(widths[i], headHeight, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for i, section := range data.Sections {
		if i > 0 {
			pdf.Ln(4)
		}
		if section.Heading != "" {
			if pdf.GetY()+headHeight*3 > pageHeight-bottom {
				pdf.AddPage()
			}
			pdf.SetFont("Arial", "B", 11)
			pdf.CellFormat(0, headHeight, tr(section.Heading), "", 1, "L", false, 0, "")
		}
		header()
		for _, row := range section.Rows {
			if pdf.GetY()+rowHeight > pageHeight-bottom {
				pdf.AddPage()
				header()
			}
			for c := range data.Headers {
				value := ""
				if c < len(row) {
					value = row[c]
				}
				pdf.CellFormat(widths[c], rowHeight, tr(value), "1", 0, "", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func columnWidths(headers []string, weights []float64) []float64 {
	total := 0.0
	resolved := make([]float64, len(headers))
	for i := range headers {
		w := 1.0
		if i < len(weights) && weights[i] > 0 {
			w = weights[i]
		}
		resolved[i] = w
		total += w
	}
	for i := range resolved {
		resolved[i] = resolved[i] / total * pageWidth
	}
	return resolved
}
