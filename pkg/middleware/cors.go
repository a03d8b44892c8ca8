package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps handler so landing pages on any of origins can post leads from the browser
func CORS(origins []string, handler http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	})

	return c.Handler(handler)
}
