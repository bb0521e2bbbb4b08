package handler

import (
	"encoding/json"
	"net/http"

	apperrors "pdf-extract-service/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeAppError writes an error in its machine-readable JSON form using
// the status code its kind maps to. Errors without a kind become a
// generic 500.
func writeAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromError(err)
	writeJSON(w, appErr.StatusCode, appErr)
}
