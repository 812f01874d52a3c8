package postgres

import "time"

type OrderDB struct {
	Seq           int64
	OrderID       string
	CustomerName  string
	Items         []byte
	Status        string
	CreatedAt     time.Time
	EstimatedTime string
}

// ItemDB элемент jsonb-колонки items.
type ItemDB struct {
	CoffeeType string   `json:"coffee_type"`
	Size       string   `json:"size"`
	Quantity   int      `json:"quantity"`
	Syrups     []string `json:"syrups"`
	ShotType   string   `json:"shot_type"`
	MilkType   string   `json:"milk_type"`
}
