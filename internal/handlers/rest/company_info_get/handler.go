package company_info_get

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
	handlerLog := log.With(logger.NewField("handler", "company_info_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	info := h.service.GetCompanyInfo(r.URL.Query().Get("query"))

	response.JSON(w, h.log, http.StatusOK, dto.FromDomainCompanyInfo(info))
}
