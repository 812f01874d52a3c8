//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_test
package token

import (
	"context"

	"barista/internal/entities"
)

type Gateway interface {
	FetchIceServerToken(ctx context.Context) (*entities.UpstreamResponse, error)
	FetchSpeechToken(ctx context.Context) (*entities.UpstreamResponse, error)
}
