package dto

import (
	"errors"
	"fmt"
	"time"

	"barista/internal/entities"
)

var ErrInvalidItem = errors.New("invalid coffee item")

// CoffeeItem входная позиция заказа. Указатели отличают отсутствующее поле от нулевого.
type CoffeeItem struct {
	CoffeeType *string  `json:"coffeeType"`
	Size       *string  `json:"size"`
	Quantity   *int     `json:"quantity"`
	Syrups     []string `json:"syrups"`
	ShotType   *string  `json:"shotType"`
	MilkType   *string  `json:"milkType"`
}

type OrderCreateRequest struct {
	CustomerName string       `json:"customerName"`
	CoffeeItems  []CoffeeItem `json:"coffeeItems"`
}

type OrderUpdateRequest struct {
	Status      *string       `json:"status"`
	CoffeeItems *[]CoffeeItem `json:"coffeeItems"`
}

type CoffeeItemResponse struct {
	CoffeeType string   `json:"coffeeType"`
	Size       string   `json:"size"`
	Quantity   int      `json:"quantity"`
	Syrups     []string `json:"syrups"`
	ShotType   string   `json:"shotType"`
	MilkType   string   `json:"milkType"`
}

type OrderResponse struct {
	OrderID       string               `json:"orderId"`
	CustomerName  string               `json:"customerName"`
	CoffeeItems   []CoffeeItemResponse `json:"coffeeItems"`
	Status        string               `json:"status"`
	CreatedAt     string               `json:"createdAt"`
	EstimatedTime string               `json:"estimatedTime"`
}

type CancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToDomainItem разбирает форму позиции: coffeeType, size и milkType обязательны,
// quantity по умолчанию 1, syrups пустой список, shotType "Single".
func ToDomainItem(item CoffeeItem) (entities.Item, error) {
	switch {
	case item.CoffeeType == nil:
		return entities.Item{}, fmt.Errorf("%w: coffeeType is required", ErrInvalidItem)
	case item.Size == nil:
		return entities.Item{}, fmt.Errorf("%w: size is required", ErrInvalidItem)
	case item.MilkType == nil:
		return entities.Item{}, fmt.Errorf("%w: milkType is required", ErrInvalidItem)
	}

	result := entities.Item{
		CoffeeType: *item.CoffeeType,
		Size:       *item.Size,
		Quantity:   entities.DefaultItemQuantity,
		Syrups:     []string{},
		ShotType:   entities.DefaultShotType,
		MilkType:   *item.MilkType,
	}
	if item.Quantity != nil {
		result.Quantity = *item.Quantity
	}
	if item.Syrups != nil {
		result.Syrups = append(result.Syrups, item.Syrups...)
	}
	if item.ShotType != nil {
		result.ShotType = *item.ShotType
	}
	return result, nil
}

func ToDomainItems(items []CoffeeItem) ([]entities.Item, error) {
	result := make([]entities.Item, 0, len(items))
	for i, item := range items {
		domainItem, err := ToDomainItem(item)
		if err != nil {
			return nil, fmt.Errorf("coffeeItems[%d]: %w", i, err)
		}
		result = append(result, domainItem)
	}
	return result, nil
}

func (r OrderCreateRequest) ToDomain() (entities.OrderCreate, error) {
	items, err := ToDomainItems(r.CoffeeItems)
	if err != nil {
		return entities.OrderCreate{}, err
	}
	return entities.OrderCreate{
		CustomerName: r.CustomerName,
		Items:        items,
	}, nil
}

func (r OrderUpdateRequest) ToDomain() (entities.OrderModify, error) {
	var modify entities.OrderModify
	if r.Status != nil {
		status := entities.OrderStatusType(*r.Status)
		modify.Status = &status
	}
	if r.CoffeeItems != nil {
		items, err := ToDomainItems(*r.CoffeeItems)
		if err != nil {
			return entities.OrderModify{}, err
		}
		modify.Items = &items
	}
	return modify, nil
}

func FromDomainOrder(o *entities.Order) OrderResponse {
	items := make([]CoffeeItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		syrups := item.Syrups
		if syrups == nil {
			syrups = []string{}
		}
		items = append(items, CoffeeItemResponse{
			CoffeeType: item.CoffeeType,
			Size:       item.Size,
			Quantity:   item.Quantity,
			Syrups:     syrups,
			ShotType:   item.ShotType,
			MilkType:   item.MilkType,
		})
	}

	return OrderResponse{
		OrderID:       o.ID,
		CustomerName:  o.CustomerName,
		CoffeeItems:   items,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt.Format(time.RFC3339Nano),
		EstimatedTime: o.EstimatedTime,
	}
}

func FromDomainOrders(orders []entities.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, FromDomainOrder(&orders[i]))
	}
	return result
}

func NewCancelResponse(orderID string) CancelResponse {
	return CancelResponse{
		Success: true,
		Message: fmt.Sprintf("Order %s cancelled.", orderID),
	}
}
