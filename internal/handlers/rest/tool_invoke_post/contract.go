//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tool_invoke_post_test
package tool_invoke_post

import (
	"context"

	"barista/internal/entities"
	"barista/internal/service/chat"
	"barista/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	InvokeTool(ctx context.Context, call entities.ToolCall) (*chat.ToolResult, error)
}
