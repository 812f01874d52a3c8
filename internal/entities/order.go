package entities

import "time"

type Order struct {
	ID            string
	CustomerName  string
	Items         []Item
	Status        OrderStatusType
	CreatedAt     time.Time
	EstimatedTime string
}

// Clone глубокая копия: хранилище не должно делить слайсы с вызывающим кодом.
func (o Order) Clone() Order {
	o.Items = CloneItems(o.Items)
	return o
}

type Item struct {
	CoffeeType string
	Size       string
	Quantity   int
	Syrups     []string
	ShotType   string
	MilkType   string
}

const (
	DefaultItemQuantity = 1
	DefaultShotType     = "Single"
)

func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Syrups = append(make([]string, 0, len(item.Syrups)), item.Syrups...)
	}
	return out
}

// TotalQuantity сумма количеств по всем позициям, без проверки знака.
func TotalQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// OrderStatusType открытый набор: update может записать любую строку.
type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderCreate struct {
	CustomerName string
	Items        []Item
}

// OrderModify частичное обновление: nil означает "поле не передано".
type OrderModify struct {
	Status *OrderStatusType
	Items  *[]Item
}

func (m OrderModify) IsEmpty() bool {
	return m.Status == nil && m.Items == nil
}
