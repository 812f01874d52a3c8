package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"barista/internal/gateway/azure/openai"
	"barista/internal/gateway/azure/speech"
	"barista/internal/handlers/tasks/orders_metrics"
	"barista/internal/pkg/config"
	"barista/internal/pkg/postgres"
	memoryRepo "barista/internal/repository/order/memory"
	postgresRepo "barista/internal/repository/order/postgres"
	"barista/internal/repository/order/postgres/migrations"
	chatService "barista/internal/service/chat"
	companyService "barista/internal/service/company"
	menuService "barista/internal/service/menu"
	orderService "barista/internal/service/order"
	tokenService "barista/internal/service/token"
	"barista/pkg/background"
	"barista/pkg/logger"
	"barista/pkg/querier"
	"barista/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

// таймаут одного запроса к токен-сервису Azure
const speechRequestTimeout = 10 * time.Second

// provideOrderStorage поднимает хранилище по ORDER_STORAGE. Для postgres
// прогоняет миграции, cleanup закрывает пул.
func provideOrderStorage(ctx context.Context, log logger.Logger, cfg *config.Config) (*OrderStorage, func(), error) {
	storageLog := log.With(logger.NewField("storage", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewConnPool(ctx, storageLog, &cfg.Storage.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database: %w", err)
		}
		cleanup := func() {
			pool.Close()
		}

		if err := postgres.Migrate(ctx, storageLog, pool, migrations.FS); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}

		txManager, err := tx.New(pool)
		if err != nil {
			cleanup()
			return nil, nil, err
		}

		storageLog.Info("order storage ready")
		return &OrderStorage{
			Repository: postgresRepo.New(querier.New(pool, pgxv5.DefaultCtxGetter)),
			TxManager:  txManager,
			Pinger:     pool,
		}, cleanup, nil

	default:
		repo := memoryRepo.New()
		storageLog.Info("order storage ready")
		return &OrderStorage{
			Repository: repo,
			TxManager:  tx.NewLocker(),
			Pinger:     repo,
		}, func() {}, nil
	}
}

func provideStoragePinger(storage *OrderStorage) StoragePinger {
	return storage.Pinger
}

func provideServiceOrder(storage *OrderStorage) *orderService.Service {
	return orderService.New(storage.Repository, storage.TxManager)
}

func provideServiceMenu(cfg *config.Config) *menuService.Service {
	return menuService.New(cfg.App.MenuPath)
}

func provideServiceCompany(cfg *config.Config) *companyService.Service {
	return companyService.New(cfg.App.Version)
}

func provideSpeechGateway(cfg *config.Config) *speech.Gateway {
	client := &http.Client{Timeout: speechRequestTimeout}
	return speech.New(client, cfg.AzureSpeech.Region, cfg.AzureSpeech.APIKey)
}

func provideServiceToken(gateway tokenService.Gateway, cfg *config.Config) *tokenService.Service {
	return tokenService.New(gateway, cfg.AzureSpeech.Region, cfg.AzureSpeech.APIKey)
}

// стрим живёт дольше обычного запроса, таймаут клиенту не ставим: его ограничивает контекст запроса
func provideOpenAIGateway(cfg *config.Config) *openai.Gateway {
	return openai.New(openai.Config{
		Endpoint:   cfg.AzureOpenAI.Endpoint,
		APIKey:     cfg.AzureOpenAI.APIKey,
		Deployment: cfg.AzureOpenAI.ChatDeployment,
		APIVersion: cfg.AzureOpenAI.APIVersion,
	})
}

func provideServiceChat(
	gateway chatService.Gateway,
	orders chatService.OrderService,
	menu chatService.MenuService,
	company chatService.CompanyService,
	cfg *config.Config,
) *chatService.Service {
	return chatService.New(gateway, orders, menu, company, cfg.Chat.StreamBuffer)
}

func provideOrdersMetricsTask(service orders_metrics.Service, cfg *config.Config) *orders_metrics.OrdersMetrics {
	return orders_metrics.NewOrdersMetrics(service, cfg.Tasks.OrdersMetricsInterval)
}

func provideTaskList(ordersMetricsTask *orders_metrics.OrdersMetrics) []background.Task {
	return []background.Task{
		ordersMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log.With(logger.NewField("component", "background")), tasks)
}
