//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"barista/internal/gateway/azure/openai"
	"barista/internal/gateway/azure/speech"
	"barista/internal/handlers/rest/check_env_get"
	"barista/internal/handlers/rest/company_info_get"
	"barista/internal/handlers/rest/menu_get"
	"barista/internal/handlers/tasks/orders_metrics"
	"barista/internal/pkg/config"
	chatService "barista/internal/service/chat"
	companyService "barista/internal/service/company"
	menuService "barista/internal/service/menu"
	orderService "barista/internal/service/order"
	tokenService "barista/internal/service/token"
	"barista/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication собирает сервисы HTTP-фасада. cleanup освобождает хранилище.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideOrderStorage,
		provideStoragePinger,

		provideServiceOrder,
		provideServiceMenu,
		provideServiceCompany,
		provideSpeechGateway,
		provideServiceToken,
		provideOpenAIGateway,
		provideServiceChat,

		provideOrdersMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceChat), new(*chatService.Service)),
		wire.Bind(new(ServiceToken), new(*tokenService.Service)),
		wire.Bind(new(menu_get.Service), new(*menuService.Service)),
		wire.Bind(new(company_info_get.Service), new(*companyService.Service)),
		wire.Bind(new(check_env_get.EnvStatusProvider), new(*config.Config)),

		wire.Bind(new(tokenService.Gateway), new(*speech.Gateway)),
		wire.Bind(new(chatService.Gateway), new(*openai.Gateway)),
		wire.Bind(new(chatService.OrderService), new(*orderService.Service)),
		wire.Bind(new(chatService.MenuService), new(*menuService.Service)),
		wire.Bind(new(chatService.CompanyService), new(*companyService.Service)),

		wire.Bind(new(orders_metrics.Service), new(*orderService.Service)),
	)
	return nil, nil, nil
}
