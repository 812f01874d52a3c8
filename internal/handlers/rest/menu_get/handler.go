package menu_get

import (
	"errors"
	"net/http"

	"barista/internal/handlers/rest/response"
	"barista/internal/service/menu"
	"barista/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "menu_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	menuJSON, err := h.service.GetMenu(r.Context())
	if err != nil {
		h.log.Error("get menu", logger.NewField("error", err))
		switch {
		case errors.Is(err, menu.ErrMenuUnavailable):
			response.Error(w, h.log, http.StatusServiceUnavailable, menu.ErrMenuUnavailable.Error())
		default:
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(menuJSON); err != nil {
		h.log.Error("write menu", logger.NewField("error", err))
	}
}
