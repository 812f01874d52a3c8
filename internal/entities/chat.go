package entities

import "encoding/json"

type ChatMessage struct {
	Role         string
	Content      string
	Name         string
	FunctionCall *FunctionCall
}

type FunctionCall struct {
	Name      string
	Arguments string
}

// Tool описание функции, которую модель может попросить вызвать.
// Parameters JSON schema в виде map, отдаётся апстриму как есть.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ChatChunk один чанк стрима от апстрима в исходном JSON виде.
type ChatChunk = json.RawMessage

const (
	ToolOrderCoffee = "order_coffee"
	ToolGetMenu     = "get_menu"
	ToolCompanyInfo = "company_info"
)

// ToolCall вызов функции по запросу модели. Order заполнен только для order_coffee.
type ToolCall struct {
	Name      string
	Arguments json.RawMessage
	Order     *OrderCreate
}

// ChatStream поток чанков от апстрима. Recv возвращает io.EOF при штатном завершении.
type ChatStream interface {
	Recv() (ChatChunk, error)
	Close() error
}
