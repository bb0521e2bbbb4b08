package extractor

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pdf-extract-service/internal/domain"
)

// Inspector validates staged documents with pdfcpu before an extraction
// engine touches them. Validation runs in relaxed mode: lightly damaged
// documents that the engines can still read pass, while non-PDF input
// and broken cross-reference structures are rejected up front.
type Inspector struct {
	conf   *model.Configuration
	logger domain.Logger
}

// NewInspector creates a new pdfcpu-backed document inspector
func NewInspector(logger domain.Logger) *Inspector {
	return &Inspector{
		conf:   model.NewDefaultConfiguration(),
		logger: logger,
	}
}

// Inspect checks that the file at path is a readable PDF and reports
// its page count.
func (i *Inspector) Inspect(path string) (*domain.DocumentInfo, error) {
	if err := api.ValidateFile(path, i.conf); err != nil {
		return nil, fmt.Errorf("document failed validation: %w", err)
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	return &domain.DocumentInfo{PageCount: pageCount}, nil
}
