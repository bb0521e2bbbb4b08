package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pdf-extract-service/internal/domain"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(extractHandler *ExtractHandler, logger domain.Logger) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestLogMiddleware(logger))
	router.Use(RecoverMiddleware(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-extract-service"}`))
	}).Methods("GET")

	// Upstream workflows POST the document to the root path.
	router.HandleFunc("/", extractHandler.ExtractText).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
