package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"pdf-extract-service/internal/domain"
	apperrors "pdf-extract-service/pkg/errors"
)

// ExtractionService turns an uploaded document into text lines. It owns
// the whole request lifecycle: validate, decode, stage on disk, inspect,
// extract under a deadline, clean up.
type ExtractionService struct {
	scratch     domain.ScratchStore
	inspector   domain.DocumentInspector
	extractor   domain.LineExtractor
	logger      domain.Logger
	maxFileSize int64
	timeout     time.Duration
}

// NewExtractionService creates a new extraction service
func NewExtractionService(
	scratch domain.ScratchStore,
	inspector domain.DocumentInspector,
	extractor domain.LineExtractor,
	logger domain.Logger,
	maxFileSize int64,
	timeout time.Duration,
) *ExtractionService {
	return &ExtractionService{
		scratch:     scratch,
		inspector:   inspector,
		extractor:   extractor,
		logger:      logger,
		maxFileSize: maxFileSize,
		timeout:     timeout,
	}
}

// Extract implements domain.ExtractionService.
func (s *ExtractionService) Extract(ctx context.Context, req *domain.ExtractionRequest) (*domain.ExtractionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	data, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		return nil, apperrors.NewDecodeError("filecontent is not valid base64", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, apperrors.NewValidationError(
			"document exceeds the maximum allowed size",
			fmt.Sprintf("%d bytes, limit is %d", len(data), s.maxFileSize),
		)
	}

	path, cleanup, err := s.scratch.Stage(data)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to stage document", err)
	}
	defer cleanup()

	info, err := s.inspector.Inspect(path)
	if err != nil {
		return nil, apperrors.NewParseError("document is not a readable PDF", err)
	}

	s.logger.Debug("Document staged",
		"filename", req.Filename,
		"size_bytes", len(data),
		"pages", info.PageCount,
	)

	start := time.Now()
	lines, err := s.extractLines(ctx, path)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = make([]string, 0) // JSON [] instead of null
	}

	s.logger.Info("Text extracted",
		"filename", req.Filename,
		"engine", s.extractor.Name(),
		"pages", info.PageCount,
		"lines", len(lines),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.ExtractionResponse{
		Filename: req.Filename,
		Text:     lines,
	}, nil
}

type extractResult struct {
	lines []string
	err   error
}

// extractLines runs the engine under the configured deadline. The
// parser cannot be interrupted once started, so on timeout its result
// is discarded and the goroutine finishes against the channel buffer.
func (s *ExtractionService) extractLines(ctx context.Context, path string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resultCh := make(chan extractResult, 1)
	go func() {
		lines, err := s.extractor.ExtractLines(path)
		resultCh <- extractResult{lines: lines, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil, apperrors.NewParseError("failed to extract text from document", res.err)
		}
		return res.lines, nil
	case <-ctx.Done():
		go func() { <-resultCh }() // drain so goroutine can exit
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.Warn("Extraction timed out", "timeout_sec", int(s.timeout.Seconds()))
			return nil, apperrors.NewTimeoutError("text extraction timed out")
		}
		return nil, apperrors.NewInternalError("extraction canceled", ctx.Err())
	}
}
