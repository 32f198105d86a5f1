// Package render — PDF renderer.
// Lays out a single page with gofpdf: title, description, extract, source.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/wikiroulette/core"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

// PDFRenderer renders a page as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render returns the PDF bytes. The core fonts only cover Windows-1252, so
// text outside it (Cyrillic, CJK, ...) is rejected rather than garbled.
func (r *PDFRenderer) Render(page *core.Page) ([]byte, error) {
	for _, s := range []string{page.Title, page.Meta.Description, page.Extract} {
		if err := checkEncodable(s); err != nil {
			return nil, err
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(page.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Translate UTF-8 to the cp1252 bytes the core fonts expect.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(page.Title), "", "L", false)
	pdf.Ln(2)

	if page.Meta.Description != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 6, tr(page.Meta.Description), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, para := range strings.Split(page.Extract, "\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		pdf.MultiCell(0, 5.5, tr(para), "", "L", false)
		pdf.Ln(3)
	}

	if page.Meta.URL != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+page.Meta.URL, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Name returns the format name.
func (r *PDFRenderer) Name() string {
	return "pdf"
}

// checkEncodable reports the first rune the PDF core fonts cannot show.
func checkEncodable(s string) error {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return fmt.Errorf("pdf output supports Latin-script text only: cannot encode %q (U+%04X)", r, r)
		}
	}
	return nil
}
