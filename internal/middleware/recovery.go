package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/lucasaraujonrt/portfolio/internal/logger"
)

// NewRecovery turns a panicking handler into a 500 response
func NewRecovery(log *logger.Logger) func(next http.Handler) http.Handler {
	base := log.Zerolog()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				base.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", RequestIDFromContext(r.Context())).
					Str("stack", string(debug.Stack())).
					Msg("panic recovered")
				WriteInternalServerError(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
