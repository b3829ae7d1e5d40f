package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucasaraujonrt/portfolio/internal/logger"
)

// statusRecorder wraps http.ResponseWriter and records the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

// WriteHeader records the status code before delegating
func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.written {
		sr.statusCode = code
		sr.written = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

// Write records an implicit 200 when WriteHeader was never called
func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.written {
		sr.statusCode = http.StatusOK
		sr.written = true
	}
	return sr.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

// NewLogging logs one structured line per request. The level follows the
// status: warn for 4xx and error for 5xx.
func NewLogging(log *logger.Logger) func(next http.Handler) http.Handler {
	base := log.Zerolog()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			level := zerolog.InfoLevel
			if rec.statusCode >= 500 {
				level = zerolog.ErrorLevel
			} else if rec.statusCode >= 400 {
				level = zerolog.WarnLevel
			}

			event := base.WithLevel(level).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.statusCode).
				Float64("duration_ms", float64(time.Since(start).Nanoseconds())/float64(time.Millisecond))
			if id := RequestIDFromContext(r.Context()); id != "" {
				event = event.Str("request_id", id)
			}
			event.Msg("http_request")
		})
	}
}
