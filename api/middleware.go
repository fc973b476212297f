package api

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Middleware wraps an http.Handler. The router applies middleware in the
// order added, outermost first.
type Middleware func(http.Handler) http.Handler

// Recovery converts handler panics into 500 responses. The panic value
// and stack are logged; the request that tripped it never takes the
// process down.
func Recovery() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				slog.Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
