package store

import (
	"fmt"
	"sync"

	models "furniture-store/model"
)

// OrderRegistry maps user emails to their accumulated orders. Record is the
// only path by which a user's order history grows, so history and registry
// never diverge.
type OrderRegistry struct {
	mu     sync.RWMutex
	byUser map[string][]*models.Order
}

// NewOrderRegistry creates an empty registry.
func NewOrderRegistry() *OrderRegistry {
	return &OrderRegistry{byUser: make(map[string][]*models.Order)}
}

// Record appends a freshly created order to its user's history, creating the
// list on first order.
func (r *OrderRegistry) Record(order *models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[order.UserEmail] = append(r.byUser[order.UserEmail], order)
}

// OrdersForUser returns the user's orders in purchase order, or an empty
// slice when there are none.
func (r *OrderRegistry) OrdersForUser(email string) []*models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := r.byUser[email]
	out := make([]*models.Order, len(orders))
	copy(out, orders)
	return out
}

// Order looks up one of the user's orders by ID.
func (r *OrderRegistry) Order(email, orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.byUser[email] {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}
