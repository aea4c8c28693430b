package store

import "sync"

// Carts holds the active shopping cart of each user, keyed by email.
type Carts struct {
	mu     sync.Mutex
	byUser map[string]*Cart
}

// NewCarts creates an empty cart registry.
func NewCarts() *Carts {
	return &Carts{byUser: make(map[string]*Cart)}
}

// ForUser returns the user's cart, creating an empty one on first use.
func (cs *Carts) ForUser(email string) *Cart {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cart, ok := cs.byUser[email]
	if !ok {
		cart = NewCart()
		cs.byUser[email] = cart
	}
	return cart
}
