package tx

import (
	"context"
	"sync"
)

// Locker менеджер "транзакций" для хранилищ в памяти.
// Do выполняет fn под эксклюзивной блокировкой, поэтому все мутации идут строго по одной.
// Вложенный Do из fn приведёт к дедлоку.
type Locker struct {
	mu sync.Mutex
}

func NewLocker() *Locker {
	return &Locker{}
}

func (l *Locker) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return fn(ctx)
}

func (l *Locker) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
