package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"barista/internal/entities"
	"barista/internal/gateway/azure"

	goopenai "github.com/sashabaranov/go-openai"
)

const serviceName = "azure-openai"

type Config struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	HTTPClient *http.Client
}

type Gateway struct {
	client     *goopenai.Client
	deployment string
}

func New(cfg Config) *Gateway {
	clientCfg := goopenai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	if cfg.APIVersion != "" {
		clientCfg.APIVersion = cfg.APIVersion
	}
	// имя деплоймента передаётся как есть, без нормализации по умолчанию
	deployment := cfg.Deployment
	clientCfg.AzureModelMapperFunc = func(string) string { return deployment }
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	return &Gateway{
		client:     goopenai.NewClientWithConfig(clientCfg),
		deployment: deployment,
	}
}

// OpenStream открывает стриминговый chat completion с описаниями функций.
// Ошибки статуса апстрима возвращаются сразу, до первого чанка.
func (g *Gateway) OpenStream(
	ctx context.Context,
	messages []entities.ChatMessage,
	tools []entities.Tool,
) (entities.ChatStream, error) {
	req := goopenai.ChatCompletionRequest{
		Model:     g.deployment,
		Messages:  fromDomainMessages(messages),
		Functions: fromDomainTools(tools),
		Stream:    true,
	}

	var stream *goopenai.ChatCompletionStream
	err := azure.ExecuteWithMetrics(ctx, serviceName, "CreateChatCompletionStream", func(ctx context.Context) (int, error) {
		var err error
		stream, err = g.client.CreateChatCompletionStream(ctx, req)
		if err != nil {
			return upstreamStatus(err), err
		}
		return http.StatusOK, nil
	})
	if err != nil {
		return nil, fmt.Errorf("gateway openai, open stream: %w", err)
	}

	return &Stream{stream: stream}, nil
}

// Stream отдаёт чанки в том виде, в каком их прислал апстрим.
type Stream struct {
	stream *goopenai.ChatCompletionStream
}

func (s *Stream) Recv() (entities.ChatChunk, error) {
	raw, err := s.stream.RecvRaw()
	switch {
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case err != nil:
		azure.ChatStreamChunksTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	azure.ChatStreamChunksTotal.WithLabelValues("ok").Inc()
	chunk := make(entities.ChatChunk, len(raw))
	copy(chunk, raw)
	return chunk, nil
}

func (s *Stream) Close() error {
	return s.stream.Close()
}

func upstreamStatus(err error) int {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
