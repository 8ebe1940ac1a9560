package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/salesdash-io/salesdash-api/pkg/metrics"
)

// Metrics records request counts and latency per route pattern. It runs
// inside the chi router so the matched pattern, not the raw path, is the
// route label.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(rec, r)

			route := chi.RouteContext(r.Context())
			pattern := r.URL.Path
			if route != nil {
				if p := route.RoutePattern(); p != "" {
					pattern = p
				}
			}
			m.ObserveRequest(pattern, r.Method, rec.Status(), time.Since(start))
		})
	}
}
