//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"barista/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, order entities.Order) error
}

// TxManager сериализует мутации хранилища: подсчёт и вставка идут одним шагом.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
