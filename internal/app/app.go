package app

import (
	"context"

	"barista/internal/handlers/kafka-consumer/order_status_changed"
	"barista/internal/handlers/rest/check_env_get"
	"barista/internal/handlers/rest/company_info_get"
	"barista/internal/handlers/rest/ice_server_token_get"
	"barista/internal/handlers/rest/menu_get"
	"barista/internal/handlers/rest/oai_response_post"
	"barista/internal/handlers/rest/order_delete"
	"barista/internal/handlers/rest/order_get"
	"barista/internal/handlers/rest/order_patch"
	"barista/internal/handlers/rest/order_post"
	"barista/internal/handlers/rest/orders_get"
	"barista/internal/handlers/rest/speech_token_get"
	"barista/internal/handlers/rest/tool_invoke_post"
	orderService "barista/internal/service/order"
	"barista/pkg/background"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceChat       ServiceChat
	ServiceToken      ServiceToken
	ServiceMenu       menu_get.Service
	ServiceCompany    company_info_get.Service
	EnvStatus         check_env_get.EnvStatusProvider
	Storage           StoragePinger
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_patch.Service
	order_delete.Service
	orders_get.Service
	order_status_changed.Service
}

type ServiceChat interface {
	oai_response_post.Service
	tool_invoke_post.Service
}

type ServiceToken interface {
	ice_server_token_get.Service
	speech_token_get.Service
}

type StoragePinger interface {
	Ping(ctx context.Context) error
}

// OrderStorage выбранный ORDER_STORAGE бэкенд заказов.
type OrderStorage struct {
	Repository orderService.Repository
	TxManager  orderService.TxManager
	Pinger     StoragePinger
}
