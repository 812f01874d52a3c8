package response

import (
	"encoding/json"
	"net/http"

	"barista/internal/dto"
	"barista/pkg/logger"
)

type Logger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error ошибки всегда уходят телом {"error": msg}.
func Error(w http.ResponseWriter, log Logger, status int, msg string) {
	JSON(w, log, status, dto.ErrorResponse{Error: msg})
}
