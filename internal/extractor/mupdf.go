package extractor

import (
	"fmt"

	"github.com/gen2brain/go-fitz"

	"pdf-extract-service/internal/domain"
)

// MuPDFExtractor extracts text lines through MuPDF via go-fitz. MuPDF
// performs its own layout analysis, so the text of each page already
// arrives as horizontal lines in reading order.
type MuPDFExtractor struct {
	logger domain.Logger
}

// NewMuPDFExtractor creates a new MuPDF-backed extractor
func NewMuPDFExtractor(logger domain.Logger) *MuPDFExtractor {
	return &MuPDFExtractor{
		logger: logger,
	}
}

// Name returns the engine identifier used in configuration and logs.
func (e *MuPDFExtractor) Name() string {
	return "mupdf"
}

// ExtractLines opens the document at path and returns its text lines in
// page order. A page that fails to render is logged and skipped.
func (e *MuPDFExtractor) ExtractLines(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var lines []string
	numPages := doc.NumPage()

	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		lines = append(lines, splitLines(text)...)
	}

	return lines, nil
}
