package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-extract-service/internal/domain"
)

func newTestRouter(svc domain.ExtractionService) http.Handler {
	logger := NewMockHandlerLogger()
	return NewRouter(NewExtractHandler(svc, logger, 1<<20), logger)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_ExtractRoute(t *testing.T) {
	svc := &MockExtractionService{
		resp: &domain.ExtractionResponse{Filename: "report.pdf", Text: []string{"hello"}},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"filename":"report.pdf","filecontent":"JVBERi0xLjQ="}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"text":["hello"]`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

func TestNewRouter_UnknownPath(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	req := httptest.NewRequest(http.MethodPost, "/nope", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(&MockExtractionService{})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", origin)
	}
}

func TestNewRouter_PanicInHandlerBecomesStructured500(t *testing.T) {
	// A service that panics exercises the recovery middleware through
	// the full router stack.
	router := newTestRouter(&panickingService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"filename":"a.pdf","filecontent":"JVBERi0xLjQ="}`))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"type":"internal"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

type panickingService struct{}

func (p *panickingService) Extract(ctx context.Context, req *domain.ExtractionRequest) (*domain.ExtractionResponse, error) {
	panic("unexpected state")
}
