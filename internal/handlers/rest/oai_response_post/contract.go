//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=oai_response_post_test
package oai_response_post

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
	StreamChatResponse(ctx context.Context, messages []entities.ChatMessage) (<-chan []byte, error)
}
