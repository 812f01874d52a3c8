package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"barista/internal/entities"
	"barista/internal/gateway/azure"
)

const (
	serviceName = "azure-speech"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// ограничение на тело ответа токен-сервиса, токены и ICE-конфиг занимают пару килобайт
	maxBodySize = 1 << 20
)

type Gateway struct {
	client   httpDoer
	region   string
	apiKey   string
	relayURL string
	issueURL string
}

type Option func(*Gateway)

// WithEndpoints переопределяет адреса апстрима, нужно для тестов на httptest.
func WithEndpoints(relayURL, issueURL string) Option {
	return func(g *Gateway) {
		g.relayURL = relayURL
		g.issueURL = issueURL
	}
}

func New(client httpDoer, region, apiKey string, opts ...Option) *Gateway {
	g := &Gateway{
		client:   client,
		region:   region,
		apiKey:   apiKey,
		relayURL: fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/avatar/relay/token/v1", region),
		issueURL: fmt.Sprintf("https://%s.api.cognitive.microsoft.com/sts/v1.0/issueToken", region),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) Region() string {
	return g.region
}

// FetchIceServerToken GET на relay-эндпоинт аватара. Статус апстрима не интерпретируется.
func (g *Gateway) FetchIceServerToken(ctx context.Context) (*entities.UpstreamResponse, error) {
	resp, err := g.call(ctx, "FetchIceServerToken", http.MethodGet, g.relayURL)
	if err != nil {
		return nil, fmt.Errorf("gateway speech, fetch ice server token: %w", err)
	}
	return resp, nil
}

// FetchSpeechToken POST с пустым телом на issueToken.
func (g *Gateway) FetchSpeechToken(ctx context.Context) (*entities.UpstreamResponse, error) {
	resp, err := g.call(ctx, "FetchSpeechToken", http.MethodPost, g.issueURL)
	if err != nil {
		return nil, fmt.Errorf("gateway speech, fetch speech token: %w", err)
	}
	return resp, nil
}

func (g *Gateway) call(ctx context.Context, method, httpMethod, url string) (*entities.UpstreamResponse, error) {
	var result *entities.UpstreamResponse

	err := azure.ExecuteWithMetrics(ctx, serviceName, method, func(ctx context.Context) (int, error) {
		req, err := http.NewRequestWithContext(ctx, httpMethod, url, http.NoBody)
		if err != nil {
			return 0, fmt.Errorf("build request: %w", err)
		}
		// http.NoBody даёт Content-Length: 0 для POST
		req.Header.Set(subscriptionKeyHeader, g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return 0, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return resp.StatusCode, fmt.Errorf("read body: %w", err)
		}

		result = &entities.UpstreamResponse{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
		return resp.StatusCode, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
