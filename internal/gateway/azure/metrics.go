package azure

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of upstream Azure requests",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "method", "code"},
	)

	ChatStreamChunksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_stream_chunks_total",
			Help: "Total number of chunks relayed from the chat completion stream",
		},
		[]string{"outcome"},
	)
)

// ExecuteWithMetrics замеряет один вызов апстрима. Ретраев нет: ошибка сразу уходит наверх.
func ExecuteWithMetrics(
	ctx context.Context,
	service, method string,
	fn func(context.Context) (int, error),
) error {
	start := time.Now()
	status, err := fn(ctx)
	GatewayRequestDuration.WithLabelValues(service, method, codeLabel(status, err)).
		Observe(time.Since(start).Seconds())
	return err
}

func codeLabel(status int, err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case status > 0:
		return strconv.Itoa(status)
	case err != nil:
		return "TRANSPORT_ERROR"
	default:
		return "OK"
	}
}
