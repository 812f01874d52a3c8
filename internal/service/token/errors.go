package token

import (
	"errors"
	"fmt"
)

var (
	ErrSpeechNotConfigured = errors.New("speech api key or region not set")
	ErrUpstreamUnavailable = errors.New("token service unavailable")
)

// UpstreamStatusError апстрим ответил не 200, статус отдаётся клиенту как есть.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("token service responded with status %d", e.StatusCode)
}
