package dto

import (
	"encoding/json"
	"errors"
	"fmt"

	"barista/internal/entities"
)

var ErrInvalidToolCall = errors.New("invalid tool call")

// ToolInvokeRequest вызов функции, запрошенный моделью.
// arguments принимается и объектом, и JSON-строкой, как её присылает модель в function_call.
type ToolInvokeRequest struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

type ToolInvokeResponse struct {
	Name   string `json:"name"`
	Result any    `json:"result"`
}

// OrderCoffeeArguments аргументы order_coffee.
type OrderCoffeeArguments = OrderCreateRequest

func (r ToolInvokeRequest) ToDomain() (entities.ToolCall, error) {
	if r.Name == "" {
		return entities.ToolCall{}, fmt.Errorf("%w: name is required", ErrInvalidToolCall)
	}

	args, err := normalizeArguments(r.Arguments)
	if err != nil {
		return entities.ToolCall{}, err
	}

	call := entities.ToolCall{
		Name:      r.Name,
		Arguments: args,
	}
	if r.Name == entities.ToolOrderCoffee {
		create, err := ParseOrderCoffeeArguments(args)
		if err != nil {
			return entities.ToolCall{}, err
		}
		call.Order = &create
	}
	return call, nil
}

func normalizeArguments(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`), nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return json.RawMessage(`{}`), nil
		}
		raw = json.RawMessage(encoded)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: arguments are not valid json", ErrInvalidToolCall)
	}
	return raw, nil
}

// ParseOrderCoffeeArguments разбирает аргументы order_coffee той же формой, что и POST /order.
func ParseOrderCoffeeArguments(raw json.RawMessage) (entities.OrderCreate, error) {
	var args OrderCoffeeArguments
	if err := json.Unmarshal(raw, &args); err != nil {
		return entities.OrderCreate{}, fmt.Errorf("%w: %w", ErrInvalidToolCall, err)
	}
	return args.ToDomain()
}
