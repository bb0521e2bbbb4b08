package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"pdf-extract-service/internal/domain"
)

// PDFTextExtractor extracts text lines with the pure-Go ledongthuc/pdf
// library. GetTextByRow groups positioned text fragments into
// horizontal rows, top to bottom, so each row maps to one output line.
type PDFTextExtractor struct {
	logger domain.Logger
}

// NewPDFTextExtractor creates a new ledongthuc/pdf-backed extractor
func NewPDFTextExtractor(logger domain.Logger) *PDFTextExtractor {
	return &PDFTextExtractor{
		logger: logger,
	}
}

// Name returns the engine identifier used in configuration and logs.
func (e *PDFTextExtractor) Name() string {
	return "pdftext"
}

// ExtractLines opens the document at path and returns one line per text
// row, in page order. The library panics on some malformed documents,
// so panics are converted into errors here.
func (e *PDFTextExtractor) ExtractLines(path string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("pdf parser failure: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			e.logger.Warn("Failed to extract rows from page", "page", pageNum, "total", numPages, "error", err)
			continue
		}

		for _, row := range rows {
			if line := cleanLine(joinRow(row)); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

// joinRow concatenates a row's positioned fragments into a single line.
func joinRow(row *pdf.Row) string {
	var b strings.Builder
	for _, word := range row.Content {
		b.WriteString(word.S)
	}
	return b.String()
}
