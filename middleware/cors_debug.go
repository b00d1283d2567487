package middleware

import (
	"log"
	"net/http"
)

// CORSDebugMiddleware logs origin and preflight details for every
// request. Enabled only via CORS_DEBUG when diagnosing a misconfigured
// origin allow-list; too noisy for normal operation.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[CORS Debug] %s %s from Origin: %s", r.Method, r.URL.Path, r.Header.Get("Origin"))

		if r.Method == "OPTIONS" {
			log.Printf("[CORS Debug] Preflight headers: %v", r.Header)
		}

		next.ServeHTTP(w, r)
	})
}
