package timeout

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Middleware ограничивает время жизни контекста запроса.
// overrides задаёт отдельный таймаут для шаблона маршрута mux, например для стрима чата.
func Middleware(timeout time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), routeTimeout(r, timeout, overrides))
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func routeTimeout(r *http.Request, fallback time.Duration, overrides map[string]time.Duration) time.Duration {
	route := mux.CurrentRoute(r)
	if route == nil {
		return fallback
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return fallback
	}
	if d, ok := overrides[template]; ok {
		return d
	}
	return fallback
}
