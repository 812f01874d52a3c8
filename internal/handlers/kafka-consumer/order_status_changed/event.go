package order_status_changed

// statusChangedEvent публикует касса или бариста-станция при смене статуса заказа.
type statusChangedEvent struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
