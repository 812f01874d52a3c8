package tool_invoke_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"barista/internal/dto"
	"barista/internal/handlers/rest/response"
	"barista/internal/service/chat"
	"barista/internal/service/menu"
	"barista/internal/service/order"
	"barista/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "tool_invoke_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var toolInvokeDTO dto.ToolInvokeRequest
	err := json.NewDecoder(r.Body).Decode(&toolInvokeDTO)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	call, err := toolInvokeDTO.ToDomain()
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.InvokeTool(r.Context(), call)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrUnknownTool),
			errors.Is(err, chat.ErrInvalidArguments),
			errors.Is(err, order.ErrMissingRequiredFields):
			response.Error(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, menu.ErrMenuUnavailable):
			h.log.Error("invoke tool", logger.NewField("tool", call.Name), logger.NewField("error", err))
			response.Error(w, h.log, http.StatusServiceUnavailable, menu.ErrMenuUnavailable.Error())
		default:
			h.log.Error("invoke tool", logger.NewField("tool", call.Name), logger.NewField("error", err))
			response.Error(w, h.log, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.log.Info("tool invoked", logger.NewField("tool", call.Name))
	response.JSON(w, h.log, http.StatusOK, dto.ToolInvokeResponse{
		Name:   call.Name,
		Result: toolResult(result),
	})
}

func toolResult(result *chat.ToolResult) any {
	switch {
	case result.Order != nil:
		return dto.FromDomainOrder(result.Order)
	case result.Info != nil:
		return dto.FromDomainServiceInfo(*result.Info)
	default:
		return result.Menu
	}
}
