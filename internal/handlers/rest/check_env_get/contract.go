//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=check_env_get_test
package check_env_get

import (
	"barista/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type EnvStatusProvider interface {
	EnvStatus() map[string]bool
}
