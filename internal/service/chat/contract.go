//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"
	"encoding/json"

	"barista/internal/entities"
)

type Gateway interface {
	OpenStream(ctx context.Context, messages []entities.ChatMessage, tools []entities.Tool) (entities.ChatStream, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error)
}

type MenuService interface {
	GetMenu(ctx context.Context) (json.RawMessage, error)
}

type CompanyService interface {
	ServiceInfo() entities.ServiceInfo
}
