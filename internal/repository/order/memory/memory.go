package memory

import (
	"context"
	"sync"

	"barista/internal/entities"
	"barista/internal/service/order"
)

// Repository хранит заказы в памяти процесса, порядок вставки сохраняется в ids.
// Мутации дополнительно сериализуются tx.Locker на уровне сервиса,
// RWMutex здесь защищает чтения от параллельной записи.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	ids    []string
}

func New() *Repository {
	return &Repository{
		orders: make(map[string]entities.Order),
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; ok {
		return order.ErrConflict
	}
	r.orders[o.ID] = o.Clone()
	r.ids = append(r.ids, o.ID)
	return nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	clone := o.Clone()
	return &clone, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]entities.Order, 0, len(r.ids))
	for _, id := range r.ids {
		result = append(result, r.orders[id].Clone())
	}
	return result, nil
}

func (r *Repository) Update(ctx context.Context, o entities.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	r.orders[o.ID] = o.Clone()
	return nil
}

// Ping хранилище в памяти доступно всегда, пока жив контекст.
func (r *Repository) Ping(ctx context.Context) error {
	return ctx.Err()
}
