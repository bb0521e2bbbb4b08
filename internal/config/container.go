package config

import (
	"time"

	"pdf-extract-service/internal/domain"
	"pdf-extract-service/internal/extractor"
	"pdf-extract-service/internal/service"
	"pdf-extract-service/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	Scratch           domain.ScratchStore
	Inspector         domain.DocumentInspector
	Extractor         domain.LineExtractor
	ExtractionService domain.ExtractionService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	scratch, err := service.NewFileScratchStore(config.GetScratchDir(), appLogger)
	if err != nil {
		return nil, err
	}

	inspector := extractor.NewInspector(appLogger)
	engine := newExtractor(config, appLogger)

	timeout := time.Duration(config.GetExtractTimeout()) * time.Second
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	extractionService := service.NewExtractionService(
		scratch,
		inspector,
		engine,
		appLogger,
		config.GetMaxFileSize(),
		timeout,
	)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		Scratch:           scratch,
		Inspector:         inspector,
		Extractor:         engine,
		ExtractionService: extractionService,
	}, nil
}

// newExtractor selects the text extraction engine named in the
// configuration. Unknown names fall back to the default engine.
func newExtractor(config domain.Config, logger domain.Logger) domain.LineExtractor {
	engine := config.GetPDFEngine()
	switch engine {
	case "pdftext":
		return extractor.NewPDFTextExtractor(logger)
	case "mupdf", "":
		return extractor.NewMuPDFExtractor(logger)
	default:
		logger.Warn("Unknown PDF engine, falling back to mupdf", "engine", engine)
		return extractor.NewMuPDFExtractor(logger)
	}
}
