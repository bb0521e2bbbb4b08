// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pdf-extract-service/internal/domain"
	apperrors "pdf-extract-service/pkg/errors"
)

// ExtractHandler handles text extraction HTTP requests
type ExtractHandler struct {
	extraction   domain.ExtractionService
	logger       domain.Logger
	maxBodyBytes int64
}

// NewExtractHandler creates a new extract handler. maxFileSize is the
// decoded document limit; the body cap is double that to leave room for
// base64 overhead and the JSON envelope.
func NewExtractHandler(extraction domain.ExtractionService, logger domain.Logger, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		extraction:   extraction,
		logger:       logger,
		maxBodyBytes: maxFileSize * 2,
	}
}

// ExtractText handles POST requests carrying a base64 document and
// responds with the extracted text lines.
func (h *ExtractHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req domain.ExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAppError(w, apperrors.NewValidationError("request body too large"))
			return
		}
		writeAppError(w, apperrors.NewDecodeError("request body is not valid JSON", err))
		return
	}

	resp, err := h.extraction.Extract(r.Context(), &req)
	if err != nil {
		h.logger.Error("Extraction failed", err, "filename", req.Filename)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
