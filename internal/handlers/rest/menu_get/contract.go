//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=menu_get_test
package menu_get

import (
	"context"
	"encoding/json"

	"barista/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetMenu(ctx context.Context) (json.RawMessage, error)
}
