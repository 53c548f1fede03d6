// Package middleware provides the HTTP middleware used by the API router.
package middleware

import (
	"net/http"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context, along with a logger
// pre-tagged with it. Apply it early in the middleware chain so every
// later handler can correlate its logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		reqLogger := logger.FromContext(ctx).With("trace_id", shared.GetTraceID(ctx))
		ctx = logger.WithContext(ctx, reqLogger)

		reqLogger.Debug("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
