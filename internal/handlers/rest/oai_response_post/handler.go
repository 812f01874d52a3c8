package oai_response_post

import (
	"encoding/json"
	"net/http"

	"barista/internal/dto"
	"barista/internal/handlers/rest/response"
	"barista/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "oai_response_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP пишет NDJSON: одна строка на чанк, каждая сразу сбрасывается клиенту.
// Ошибки апстрима приходят последней строкой, статус всегда 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var chatRequestDTO dto.ChatRequest
	err := json.NewDecoder(r.Body).Decode(&chatRequestDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	lines, err := h.service.StreamChatResponse(r.Context(), chatRequestDTO.ToDomain())
	if err != nil {
		h.log.Error("open chat stream", logger.NewField("error", err))
		response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	written := 0
	for line := range lines {
		if _, err := w.Write(line); err != nil {
			h.log.Warn("client gone during chat stream",
				logger.NewField("lines", written),
				logger.NewField("error", err),
			)
			return
		}
		if err := rc.Flush(); err != nil {
			h.log.Warn("flush chat stream", logger.NewField("error", err))
		}
		written++
	}

	h.log.Info("chat stream finished",
		logger.NewField("messages", len(chatRequestDTO.Messages)),
		logger.NewField("lines", written),
	)
}
