package check_env_get

import (
	"net/http"

	"barista/internal/handlers/rest/response"
	"barista/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	provider EnvStatusProvider
}

func New(log handlerLogger, provider EnvStatusProvider) *Handler {
	handlerLog := log.With(logger.NewField("handler", "check_env_get"))

	return &Handler{
		log:      handlerLog,
		provider: provider,
	}
}

// ServeHTTP отвечает только флагами наличия, значения переменных наружу не уходят.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, h.log, http.StatusOK, h.provider.EnvStatus())
}
