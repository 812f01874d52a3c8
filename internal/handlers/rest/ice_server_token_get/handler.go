package ice_server_token_get

import (
	"errors"
	"fmt"
	"net/http"

	"barista/internal/handlers/rest/response"
	"barista/internal/service/token"
	"barista/pkg/logger"
)

const notConfiguredMessage = "Speech API key or region not set."

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ice_server_token_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP обслуживает и GET, и POST: тело релея отдаётся клиенту без изменений.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	iceToken, err := h.service.IssueIceServerToken(r.Context())
	if err != nil {
		var statusErr *token.UpstreamStatusError
		switch {
		case errors.Is(err, token.ErrSpeechNotConfigured):
			response.Error(w, h.log, http.StatusInternalServerError, notConfiguredMessage)
		case errors.As(err, &statusErr):
			h.log.Warn("relay token rejected", logger.NewField("status", statusErr.StatusCode))
			response.Error(w, h.log, statusErr.StatusCode,
				fmt.Sprintf("Failed to fetch ICE server token: %d", statusErr.StatusCode))
		case errors.Is(err, token.ErrUpstreamUnavailable):
			h.log.Error("fetch relay token", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusBadGateway, err.Error())
		default:
			h.log.Error("fetch relay token", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(iceToken); err != nil {
		h.log.Error("write relay token", logger.NewField("error", err))
	}
}
