package order_patch

import (
	"encoding/json"
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
	handlerLog := log.With(logger.NewField("handler", "order_patch"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var orderUpdateDTO dto.OrderUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	orderModify, err := orderUpdateDTO.ToDomain()
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	orderEntity, err := h.service.UpdateOrder(r.Context(), orderID, orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrEmptyItems):
			response.Error(w, h.log, http.StatusBadRequest, order.ErrEmptyItems.Error())
		default:
			h.log.Error("update order", logger.NewField("order_id", orderID), logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.FromDomainOrder(orderEntity))
}
