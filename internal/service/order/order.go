package order

import (
	"context"
	"fmt"
	"time"

	"barista/internal/entities"
)

const (
	orderIDPrefix = "ORD-"
	orderIDBase   = 1000

	baseEstimateMinutes = 5
)

type Service struct {
	repository Repository
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		now:        time.Now,
	}
}

// NextOrderID идентификатор выводится из текущего размера хранилища.
// Уникален только пока заказы не удаляются физически и вставки сериализованы.
func NextOrderID(count int) string {
	return fmt.Sprintf("%s%d", orderIDPrefix, orderIDBase+count+1)
}

// EstimateMinutes 5 + total + floor(total/2). Деление с округлением вниз и для отрицательных.
func EstimateMinutes(totalQuantity int) int {
	half := totalQuantity / 2
	if totalQuantity%2 != 0 && totalQuantity < 0 {
		half--
	}
	return baseEstimateMinutes + totalQuantity + half
}

func EstimateTime(items []entities.Item) string {
	return fmt.Sprintf("%d minutes", EstimateMinutes(entities.TotalQuantity(items)))
}

func (s *Service) PlaceOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error) {
	if create.CustomerName == "" || len(create.Items) == 0 {
		return nil, ErrMissingRequiredFields
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.repository.Count(ctx)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}

		order = entities.Order{
			ID:            NextOrderID(count),
			CustomerName:  create.CustomerName,
			Items:         entities.CloneItems(create.Items),
			Status:        entities.OrderPending,
			CreatedAt:     s.now().UTC(),
			EstimatedTime: EstimateTime(create.Items),
		}

		if err := s.repository.Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// UpdateOrder применяет только переданные поля. Статус не валидируется,
// EstimatedTime не пересчитывается.
func (s *Service) UpdateOrder(ctx context.Context, id string, modify entities.OrderModify) (*entities.Order, error) {
	if modify.Items != nil && len(*modify.Items) == 0 {
		return nil, ErrEmptyItems
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if modify.IsEmpty() {
			updated = *order
			return nil
		}

		if modify.Status != nil {
			order.Status = *modify.Status
		}
		if modify.Items != nil {
			order.Items = entities.CloneItems(*modify.Items)
		}

		if err := s.repository.Update(ctx, *order); err != nil {
			return err
		}
		updated = *order
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &updated, nil
}

// CancelOrder безусловно переводит заказ в cancelled, повторный вызов ничего не ломает.
func (s *Service) CancelOrder(ctx context.Context, id string) (*entities.Order, error) {
	cancelled := entities.OrderCancelled
	order, err := s.UpdateOrder(ctx, id, entities.OrderModify{Status: &cancelled})
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
