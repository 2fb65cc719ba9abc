package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
)

// Metrics records request counts and latencies per route pattern
func Metrics(collector *monitoring.MetricsCollector) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			// Use the route pattern, not the raw path, to keep label
			// cardinality bounded.
			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}

			collector.RecordHTTPRequest(r.Method, path, wrapped.statusCode, time.Since(start))
		})
	}
}
