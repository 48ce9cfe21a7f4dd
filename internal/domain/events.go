package domain

import "time"

const (
	EventOrderPlaced    = "order_placed"
	EventOrderCompleted = "order_completed"
	EventOrderCancelled = "order_cancelled"
)

type OrderEvent struct {
	Type        string           `json:"type"`
	OrderID     int              `json:"order_id"`
	Status      string           `json:"status"`
	TotalAmount float64          `json:"total_amount"`
	Items       []OrderEventItem `json:"items"`
	Timestamp   time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}
