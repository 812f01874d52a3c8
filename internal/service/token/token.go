package token

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"barista/internal/entities"
)

// Service обменивает ключ подписки на короткоживущие токены. Токены не кэшируются.
type Service struct {
	gateway    Gateway
	region     string
	configured bool
}

func New(gateway Gateway, region, apiKey string) *Service {
	return &Service{
		gateway:    gateway,
		region:     region,
		configured: region != "" && apiKey != "",
	}
}

func (s *Service) IssueIceServerToken(ctx context.Context) (entities.IceServerToken, error) {
	if !s.configured {
		return nil, ErrSpeechNotConfigured
	}

	resp, err := s.gateway.FetchIceServerToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}
	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("%w: relay returned malformed json", ErrUpstreamUnavailable)
	}

	return entities.IceServerToken(resp.Body), nil
}

func (s *Service) IssueSpeechToken(ctx context.Context) (*entities.SpeechToken, error) {
	if !s.configured {
		return nil, ErrSpeechNotConfigured
	}

	resp, err := s.gateway.FetchSpeechToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	return &entities.SpeechToken{
		Token:  string(resp.Body),
		Region: s.region,
	}, nil
}
