package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"server/internal/domain"
	"server/internal/imaging"
)

const (
	pdfFont        = "Arial"
	swatchSize     = 12.0
	swatchGap      = 4.0
	pdfContentType = "application/pdf"
)

// PDFContentType is the media type for the generated brand kit.
func PDFContentType() string { return pdfContentType }

// PDF lays out the brand kit document: name, taglines, story sections,
// palette swatches, typography, and optionally the logo image. logoPNG may be
// nil when no logo has been rendered.
func PDF(snap domain.Snapshot, logoPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := snap.SelectedName
	if title == "" {
		title = "Brand Kit"
	}
	pdf.SetFont(pdfFont, "B", 24)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	if len(snap.Taglines) > 0 {
		pdf.SetFont(pdfFont, "B", 16)
		pdf.CellFormat(0, 10, "Taglines", "", 1, "", false, 0, "")
		pdf.SetFont(pdfFont, "", 12)
		for _, tagline := range snap.Taglines {
			pdf.MultiCell(0, 10, "- "+tagline, "", "", false)
		}
		pdf.Ln(5)
	}

	sections := []struct {
		title   string
		content string
	}{
		{"Vision", snap.Story.Vision},
		{"Mission", snap.Story.Mission},
		{"Problem", snap.Story.Problem},
		{"Solution", snap.Story.Solution},
		{"Positioning", snap.Story.Positioning},
	}
	for _, section := range sections {
		if section.content == "" {
			continue
		}
		pdf.SetFont(pdfFont, "B", 14)
		pdf.CellFormat(0, 10, section.title, "", 1, "", false, 0, "")
		pdf.SetFont(pdfFont, "", 11)
		pdf.MultiCell(0, 8, section.content, "", "", false)
		pdf.Ln(3)
	}

	if len(snap.Colors) > 0 {
		pdf.SetFont(pdfFont, "B", 14)
		pdf.CellFormat(0, 10, "Color Palette", "", 1, "", false, 0, "")
		pdf.SetFont(pdfFont, "", 11)
		x, y := pdf.GetXY()
		for _, hex := range snap.Colors {
			r, g, b, err := parseHex(hex)
			if err != nil {
				continue
			}
			pdf.SetFillColor(r, g, b)
			pdf.Rect(x, y, swatchSize, swatchSize, "F")
			pdf.SetXY(x, y+swatchSize+1)
			pdf.CellFormat(swatchSize, 5, hex, "", 0, "C", false, 0, "")
			x += swatchSize + swatchGap
		}
		pdf.SetXY(pdf.GetX(), y+swatchSize+8)
		pdf.Ln(5)
	}

	if snap.Fonts != (domain.FontPairing{}) {
		pdf.SetFont(pdfFont, "B", 14)
		pdf.CellFormat(0, 10, "Typography", "", 1, "", false, 0, "")
		pdf.SetFont(pdfFont, "", 11)
		pdf.CellFormat(0, 8, "Logo Font: "+orNA(snap.Fonts.Logo), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 8, "Heading Font: "+orNA(snap.Fonts.Heading), "", 1, "", false, 0, "")
		pdf.CellFormat(0, 8, "Body Font: "+orNA(snap.Fonts.Body), "", 1, "", false, 0, "")
		pdf.Ln(5)
	}

	if _, _, format, err := imaging.Inspect(logoPNG); err == nil && format == "png" {
		pdf.SetFont(pdfFont, "B", 14)
		pdf.CellFormat(0, 10, "Logo", "", 1, "", false, 0, "")
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("brand-logo", opts, bytes.NewReader(logoPNG))
		pdf.ImageOptions("brand-logo", pdf.GetX(), pdf.GetY(), 60, 0, true, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func parseHex(hex string) (int, int, int, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, fmt.Errorf("export: bad hex color %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("export: bad hex color %q", hex)
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
