package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "pdf-extract-service/pkg/errors"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, map[string]string{"status": "ok"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError_KnownKind(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, apperrors.NewParseError("document is not a readable PDF", errors.New("bad xref")))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"type":"parse"`) {
		t.Fatalf("unexpected response body: %s", body)
	}
	if !strings.Contains(body, `"message":"document is not a readable PDF"`) {
		t.Fatalf("unexpected response body: %s", body)
	}
	// The cause stays server-side.
	if strings.Contains(body, "bad xref") {
		t.Fatalf("cause leaked to client: %s", body)
	}
}

func TestWriteAppError_UnknownError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, errors.New("database password wrong"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"type":"internal"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "password") {
		t.Fatalf("raw error leaked to client: %s", rr.Body.String())
	}
}

func TestWriteAppError_ValidationDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, apperrors.NewValidationError("document exceeds the maximum allowed size", "limit is 50MB"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"details":"limit is 50MB"`) {
		t.Fatalf("expected details in response body: %s", rr.Body.String())
	}
}
