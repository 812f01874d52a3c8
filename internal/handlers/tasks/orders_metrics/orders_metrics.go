package orders_metrics

import (
	"context"
	"fmt"
	"time"

	"barista/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "barista_orders_by_status",
			Help: "Current number of orders grouped by status",
		},
		[]string{"status"},
	)

	OrdersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "barista_orders_total",
			Help: "Current number of stored orders",
		},
	)
)

type Service interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

// OrdersMetrics периодически пересчитывает гейджи по содержимому хранилища заказов.
type OrdersMetrics struct {
	service  Service
	interval time.Duration
}

func NewOrdersMetrics(service Service, interval time.Duration) *OrdersMetrics {
	return &OrdersMetrics{
		service:  service,
		interval: interval,
	}
}

func (o *OrdersMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrdersMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	orders, err := o.service.ListOrders(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("collect orders metrics: %w", err)
	}

	counts := make(map[string]int)
	for _, order := range orders {
		counts[order.Status.String()]++
	}

	// статусы открытый набор, исчезнувшие метки сбрасываем
	OrdersByStatus.Reset()
	for status, n := range counts {
		OrdersByStatus.WithLabelValues(status).Set(float64(n))
	}
	OrdersTotal.Set(float64(len(orders)))

	return nil
}

func (o *OrdersMetrics) Info() string {
	return "orders metrics"
}
