//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import "context"

// StoragePinger проверка, что хранилище заказов принимает запросы.
type StoragePinger interface {
	Ping(ctx context.Context) error
}
