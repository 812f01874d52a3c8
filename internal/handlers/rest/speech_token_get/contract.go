//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=speech_token_get_test
package speech_token_get

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
	IssueSpeechToken(ctx context.Context) (*entities.SpeechToken, error)
}
