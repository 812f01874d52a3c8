package recovery

import (
	"net/http"
	"runtime/debug"

	"barista/internal/handlers/rest/response"
	"barista/internal/pkg/middlewares/request_id"
	"barista/pkg/logger"
)

// Middleware паника в обработчике превращается в 500 {"error": ...} и запись в лог со стеком.
// http.ErrAbortHandler пробрасывается дальше: им net/http обрывает соединение.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // сравнение значения паники
					panic(rec)
				}

				log.With(
					logger.NewField("request_id", request_id.FromContext(r.Context())),
					logger.NewField("path", r.URL.Path),
					logger.NewField("panic", rec),
					logger.NewField("stack", string(debug.Stack())),
				).Error("handler panic recovered")

				response.Error(w, log, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
