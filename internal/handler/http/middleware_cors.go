package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/solarpanel/tracker-api/internal/utils"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsHeaders = []string{"Content-Type", "Authorization"}
)

// withStaticHeaders sets the JSON content type and the open CORS policy on
// every response of the legacy entry point, whether or not the request
// carries an Origin header.
func withStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Content-Type", utils.ContentTypeJSON)
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
		header.Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))

		next.ServeHTTP(w, r)
	})
}

// withCORS answers browser preflight requests.
func withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: corsHeaders,
		MaxAge:         300,
	})
}
