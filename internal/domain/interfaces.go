package domain

import "context"

// ExtractionService defines the main interface for turning an uploaded
// document into extracted text lines.
type ExtractionService interface {
	Extract(ctx context.Context, req *ExtractionRequest) (*ExtractionResponse, error)
}

// LineExtractor defines the strategy interface for text extraction.
// Implementations read the document from a staged file path, since the
// underlying parsing libraries operate on files, and return the
// document's non-empty text lines in layout order.
type LineExtractor interface {
	ExtractLines(path string) ([]string, error)
	Name() string
}

// DocumentInspector validates a staged document before extraction and
// reports basic facts about it.
type DocumentInspector interface {
	Inspect(path string) (*DocumentInfo, error)
}

// ScratchStore stages document bytes on disk for path-based parsers.
// Stage returns the file path and a cleanup function that removes the
// file; callers must invoke cleanup on every exit path.
type ScratchStore interface {
	Stage(data []byte) (path string, cleanup func(), err error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetHost() string
	GetScratchDir() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetPDFEngine() string
	GetExtractTimeout() int64
}
