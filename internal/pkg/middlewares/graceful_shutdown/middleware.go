package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"barista/internal/handlers/rest/response"
	"barista/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Middleware после начала остановки новые запросы получают 503 {"error": ...} и Connection: close.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					response.Error(w, log, http.StatusServiceUnavailable, "Service is shutting down")
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
