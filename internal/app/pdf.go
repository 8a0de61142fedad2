package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeReportPDF renders the Markdown report to a minimal PDF layout:
// headings get larger bold type, everything else flows as body text. The
// HTML highlight spans have no PDF equivalent and are stripped.
func writeReportPDF(markdown string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		s = stripHighlightSpans(s)
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if s == "---" {
			pdf.Ln(2)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 14.0
			if i >= 2 {
				size = 12.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, tr(text), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		// Bullet lines keep their dash; bold markers have no layout here.
		s = strings.ReplaceAll(s, "**", "")
		pdf.MultiCell(0, 5, tr(s), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outPath)
}

func stripHighlightSpans(s string) string {
	s = strings.ReplaceAll(s, `<span class="highlight">`, "")
	return strings.ReplaceAll(s, "</span>", "")
}
