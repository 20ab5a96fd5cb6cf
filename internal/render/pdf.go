package render

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// ExportFileName is the fixed download name of the exported document.
const ExportFileName = "Executive_Summary.pdf"

// pdfSurface renders the walk into a paginated A4 document: bold left-aligned
// heading runs with trailing spacing, bulleted list items with small spacing,
// justified body paragraphs. Breaks start a new page.
type pdfSurface struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newPDFSurface() *pdfSurface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()
	return &pdfSurface{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *pdfSurface) Title(text string) {
	p.pdf.SetFont("Helvetica", "B", 18)
	p.pdf.MultiCell(0, 9, p.tr(text), "", "L", false)
	p.pdf.Ln(4)
	p.pdf.SetFont("Helvetica", "", 11)
}

func (p *pdfSurface) Heading(text string) {
	p.pdf.SetFont("Helvetica", "B", 14)
	p.pdf.CellFormat(0, 8, p.tr(text), "", 1, "L", false, 0, "")
	p.pdf.Ln(2)
	p.pdf.SetFont("Helvetica", "", 11)
}

func (p *pdfSurface) Bullet(text string) {
	left, _, _, _ := p.pdf.GetMargins()
	p.pdf.SetX(left)
	p.pdf.CellFormat(6, 5, p.tr("•"), "", 0, "L", false, 0, "")
	p.pdf.MultiCell(0, 5, p.tr(text), "", "L", false)
	p.pdf.Ln(1)
}

func (p *pdfSurface) Paragraph(text string) {
	p.pdf.MultiCell(0, 5, p.tr(text), "", "J", false)
	p.pdf.Ln(2)
}

func (p *pdfSurface) Break() {
	p.pdf.AddPage()
}

func (p *pdfSurface) ContactLine(label, value string) {
	p.pdf.CellFormat(0, 5, p.tr(label+": "+value), "", 1, "L", false, 0, "")
	p.pdf.Ln(1)
}

// PDF renders the input into the export artifact and writes it to w.
func PDF(in Input, w io.Writer) error {
	s := newPDFSurface()
	Walk(in, s)
	return s.pdf.Output(w)
}
