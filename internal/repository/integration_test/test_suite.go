//go:build integration

package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"barista/internal/pkg/config"
	"barista/internal/pkg/postgres"
	"barista/internal/repository/order/postgres/migrations"
	"barista/pkg/logger/zap_adapter"
	"barista/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

func setup() {
	setupOnce.Do(func() {
		// переменные POSTGRES_* выставляет окружение тестового прогона
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()
		zapLogger := zap_adapter.NewNop()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("connect to test database: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, connPool, migrations.FS); err != nil {
			log.Fatalf("migrate test database: %v", err)
		}

		poolInstance = connPool
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
}

func GetPool() *pgxpool.Pool {
	setup()
	return poolInstance
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `TRUNCATE TABLE orders RESTART IDENTITY;`)
	require.NoError(t, err)
}
