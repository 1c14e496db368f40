package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS returns a middleware that answers preflight requests and sets CORS
// headers for the given origins. Credentials (the session cookie) are only
// allowed for an explicit list of origins. An empty list allows every origin
// with a wildcard and no credentials, so cross-origin callers must use the
// Authorization header.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: len(allowedOrigins) > 0,
		MaxAge:           300,
	})
}
