package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressHandler gzip-compresses responses when the client accepts it.
// The vote-share and contact tables repeat long place names heavily, so
// compression pays for itself on the bigger drill-downs.
func CompressHandler(next http.Handler) http.Handler {
	return handlers.CompressHandler(next)
}
