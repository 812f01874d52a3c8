package order_get

import (
	"errors"
	"net/http"

	"barista/internal/dto"
	"barista/internal/handlers/rest/response"
	"barista/internal/service/order"
	"barista/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, "Order not found")
		default:
			h.log.Error("get order", logger.NewField("order_id", orderID), logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDomainOrder(orderEntity))
}
