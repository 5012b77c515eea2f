package domain

import "time"

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// List of possible order statuses
const (
	StatusPlaced    OrderStatus = "placed"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// List of allowed statuses
var allowedStatuses = [...]OrderStatus{
	StatusPlaced, StatusDelivered, StatusCancelled,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a single customer order as recorded by the fulfillment
// pipeline. DeliveredAt, DeliveryTimeMinutes and DelayMinutes are nil
// until the order reaches a terminal outcome; CancellationReason is
// non-nil only for cancelled orders.
type Order struct {
	ID                  int64
	UserID              int64
	StoreID             int64
	RiderID             int64
	PlacedAt            time.Time
	PromisedAt          time.Time
	DeliveredAt         *time.Time
	Status              OrderStatus
	CancellationReason  *string
	TotalItems          int
	TotalAmount         float64
	PickingTimeMinutes  float64
	DeliveryTimeMinutes *float64
	DelayMinutes        *float64
}

// OrderLineItem is one product line of an order. WasOutOfStock marks
// the item as unavailable at fulfillment time (a stockout).
type OrderLineItem struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	Quantity      int
	WasOutOfStock bool
}
