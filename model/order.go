package models

import (
	"fmt"
	"time"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
)

// statusRank orders the statuses along the fulfilment pipeline.
var statusRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusShipped:   1,
	StatusDelivered: 2,
}

// ParseOrderStatus converts a wire string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if _, ok := statusRank[st]; !ok {
		return "", fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, s)
	}
	return st, nil
}

// OrderLine is a single purchased position. UnitPrice is the catalog price at
// purchase time; later price changes do not affect it.
type OrderLine struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is an immutable snapshot of a completed purchase. Only Status may
// change after creation.
type Order struct {
	ID        string      `json:"id"`
	UserEmail string      `json:"user_email"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// UpdateStatus advances the order one step along
// pending -> shipped -> delivered. Skipping a step or moving backwards fails.
func (o *Order) UpdateStatus(next OrderStatus) error {
	nextRank, ok := statusRank[next]
	if !ok {
		return fmt.Errorf("%w: unknown order status %q", ErrInvalidArgument, next)
	}
	if nextRank != statusRank[o.Status]+1 {
		return fmt.Errorf("%w: cannot move order from %s to %s", ErrInvalidArgument, o.Status, next)
	}
	o.Status = next
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order %s: user=%s total=$%.2f status=%s", o.ID, o.UserEmail, o.Total, o.Status)
}
