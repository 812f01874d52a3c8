package postgres

import (
	"encoding/json"
	"fmt"

	"barista/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []ItemDB
	if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
		return nil, fmt.Errorf("decode items of %s: %w", o.OrderID, err)
	}

	items := make([]entities.Item, len(itemsDB))
	for i, item := range itemsDB {
		syrups := item.Syrups
		if syrups == nil {
			syrups = []string{}
		}
		items[i] = entities.Item{
			CoffeeType: item.CoffeeType,
			Size:       item.Size,
			Quantity:   item.Quantity,
			Syrups:     syrups,
			ShotType:   item.ShotType,
			MilkType:   item.MilkType,
		}
	}

	return &entities.Order{
		ID:            o.OrderID,
		CustomerName:  o.CustomerName,
		Items:         items,
		Status:        entities.OrderStatusType(o.Status),
		CreatedAt:     o.CreatedAt.UTC(),
		EstimatedTime: o.EstimatedTime,
	}, nil
}

func FromDomainItems(items []entities.Item) ([]byte, error) {
	itemsDB := make([]ItemDB, len(items))
	for i, item := range items {
		itemsDB[i] = ItemDB{
			CoffeeType: item.CoffeeType,
			Size:       item.Size,
			Quantity:   item.Quantity,
			Syrups:     item.Syrups,
			ShotType:   item.ShotType,
			MilkType:   item.MilkType,
		}
	}
	return json.Marshal(itemsDB)
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		o, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	return result, nil
}
