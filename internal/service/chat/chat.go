package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"barista/internal/entities"
)

const defaultBufferSize = 16

type Service struct {
	gateway    Gateway
	orders     OrderService
	menu       MenuService
	company    CompanyService
	bufferSize int
}

func New(
	gateway Gateway,
	orders OrderService,
	menu MenuService,
	company CompanyService,
	bufferSize int,
) *Service {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Service{
		gateway:    gateway,
		orders:     orders,
		menu:       menu,
		company:    company,
		bufferSize: bufferSize,
	}
}

// ToolResult результат вызова функции. Заполнено ровно одно поле.
type ToolResult struct {
	Order *entities.Order
	Menu  json.RawMessage
	Info  *entities.ServiceInfo
}

// StreamChatResponse отдаёт чанки апстрима строками компактного JSON с \n на конце.
// Ошибка апстрима превращается в последнюю строку {"error": ...}, после чего канал закрывается.
// Отмена ctx останавливает чтение апстрима.
func (s *Service) StreamChatResponse(ctx context.Context, messages []entities.ChatMessage) (<-chan []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := make(chan []byte, s.bufferSize)
	go func() {
		defer close(lines)
		s.produce(ctx, messages, lines)
	}()

	return lines, nil
}

func (s *Service) produce(ctx context.Context, messages []entities.ChatMessage, lines chan<- []byte) {
	stream, err := s.gateway.OpenStream(ctx, messages, Tools())
	if err != nil {
		send(ctx, lines, errorLine(err))
		return
	}
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			send(ctx, lines, errorLine(err))
			return
		}

		line, err := compactLine(chunk)
		if err != nil {
			send(ctx, lines, errorLine(err))
			return
		}
		if !send(ctx, lines, line) {
			return
		}
	}
}

func send(ctx context.Context, lines chan<- []byte, line []byte) bool {
	select {
	case <-ctx.Done():
		return false
	case lines <- line:
		return true
	}
}

func compactLine(chunk entities.ChatChunk) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, chunk); err != nil {
		return nil, fmt.Errorf("compact chunk: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func errorLine(err error) []byte {
	line, marshalErr := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: err.Error()})
	if marshalErr != nil {
		line = []byte(`{"error":"stream failed"}`)
	}
	return append(line, '\n')
}

// InvokeTool выполняет функцию, которую запросила модель.
func (s *Service) InvokeTool(ctx context.Context, call entities.ToolCall) (*ToolResult, error) {
	switch call.Name {
	case entities.ToolOrderCoffee:
		if call.Order == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidArguments, call.Name)
		}
		order, err := s.orders.PlaceOrder(ctx, *call.Order)
		if err != nil {
			return nil, fmt.Errorf("invoke %s: %w", call.Name, err)
		}
		return &ToolResult{Order: order}, nil

	case entities.ToolGetMenu:
		menu, err := s.menu.GetMenu(ctx)
		if err != nil {
			return nil, fmt.Errorf("invoke %s: %w", call.Name, err)
		}
		return &ToolResult{Menu: menu}, nil

	case entities.ToolCompanyInfo:
		info := s.company.ServiceInfo()
		return &ToolResult{Info: &info}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, call.Name)
	}
}
