package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"barista/internal/dto"
	"barista/internal/handlers/rest/response"
	"barista/internal/service/order"
	"barista/pkg/logger"
)

const missingFieldsMessage = "Missing customerName or coffeeItems"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	orderCreate, err := orderCreateDTO.ToDomain()
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	orderEntity, err := h.service.PlaceOrder(r.Context(), orderCreate)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			response.Error(w, h.log, http.StatusBadRequest, missingFieldsMessage)
		default:
			h.log.Error("place order", logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.log.Info("order placed",
		logger.NewField("order_id", orderEntity.ID),
		logger.NewField("items", len(orderEntity.Items)),
	)
	response.JSON(w, h.log, http.StatusOK, dto.FromDomainOrder(orderEntity))
}
