//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ice_server_token_get_test
package ice_server_token_get

import (
	"context"

	"barista/internal/entities"
	"barista/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	IssueIceServerToken(ctx context.Context) (entities.IceServerToken, error)
}
