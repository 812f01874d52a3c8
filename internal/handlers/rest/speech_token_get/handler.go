package speech_token_get

import (
	"errors"
	"net/http"

	"barista/internal/dto"
	"barista/internal/handlers/rest/response"
	"barista/internal/service/token"
	"barista/pkg/logger"
)

const (
	notConfiguredMessage = "Speech API key or region not set."
	fetchFailedMessage   = "Failed to fetch speech token."
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "speech_token_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP ошибки конфигурации и отказ апстрима отдаются объектом с кодом 200,
// клиент различает их по полю error.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	speechToken, err := h.service.IssueSpeechToken(r.Context())
	if err != nil {
		var statusErr *token.UpstreamStatusError
		switch {
		case errors.Is(err, token.ErrSpeechNotConfigured):
			response.JSON(w, h.log, http.StatusOK, dto.SpeechTokenErrorResponse{Error: notConfiguredMessage})
		case errors.As(err, &statusErr):
			h.log.Warn("speech token rejected", logger.NewField("status", statusErr.StatusCode))
			response.JSON(w, h.log, http.StatusOK, dto.SpeechTokenErrorResponse{
				Error:  fetchFailedMessage,
				Status: statusErr.StatusCode,
			})
		case errors.Is(err, token.ErrUpstreamUnavailable):
			h.log.Error("fetch speech token", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusBadGateway, err.Error())
		default:
			h.log.Error("fetch speech token", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.SpeechTokenResponse{
		Token:  speechToken.Token,
		Region: speechToken.Region,
	})
}
