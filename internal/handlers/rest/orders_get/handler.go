package orders_get

import (
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
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.Error("list orders", logger.NewField("error", err))
		response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDomainOrders(orders))
}
