package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lucasaraujonrt/portfolio/internal/metrics"
)

// NewMetrics records latency and status per chi route pattern, so
// /blog/trello and /blog/discord share one series.
func NewMetrics(rec metrics.Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := newStatusRecorder(w)

			next.ServeHTTP(sr, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			rec.RecordRequest(r.Method, route, sr.statusCode, time.Since(start))
		})
	}
}
