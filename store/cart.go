package store

import (
	"fmt"
	"sort"
	"sync"

	models "furniture-store/model"
)

// Availability is the slice of the inventory a cart consults when staging
// items. The cart only reads; stock is debited at checkout.
type Availability interface {
	Item(id int64) (models.CatalogItem, error)
	GetQuantity(id int64) int
}

// CartLine is one staged position in a shopping cart. UnitPrice is the
// catalog price captured when the line was last added to.
type CartLine struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Cart stages desired quantities for a single user. It checks availability
// against the inventory but never reserves or mutates stock; availability is
// re-verified at checkout. The cached total is recomputed on every mutation
// as sum(unit price x quantity) scaled by the accumulated discount, so it
// cannot drift.
type Cart struct {
	mu       sync.Mutex
	lines    map[int64]*CartLine
	discount float64 // multiplicative factor; 1 means no discount
	total    float64
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[int64]*CartLine), discount: 1}
}

// AddFurniture stages qty more units of an item. Quantities accumulate across
// calls. Fails with ErrOutOfStock when the requested quantity exceeds what the
// inventory currently has available.
func (c *Cart) AddFurniture(inv Availability, id int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity %d must be > 0", models.ErrInvalidArgument, qty)
	}
	item, err := inv.Item(id)
	if err != nil {
		return err
	}
	if available := inv.GetQuantity(id); qty > available {
		return fmt.Errorf("item %d: %w (requested %d, available %d)", id, ErrOutOfStock, qty, available)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok := c.lines[id]
	if !ok {
		line = &CartLine{ItemID: id}
		c.lines[id] = line
	}
	line.Quantity += qty
	line.UnitPrice = item.Price
	c.recomputeLocked()
	return nil
}

// RemoveFurniture takes qty units of an item back out of the cart. The line
// disappears when its quantity reaches zero; going below zero fails.
func (c *Cart) RemoveFurniture(id int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity %d must be > 0", models.ErrInvalidArgument, qty)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	line, ok := c.lines[id]
	if !ok || line.Quantity < qty {
		have := 0
		if ok {
			have = line.Quantity
		}
		return fmt.Errorf("%w: cannot remove %d of item %d, cart holds %d", models.ErrInvalidArgument, qty, id, have)
	}
	line.Quantity -= qty
	if line.Quantity == 0 {
		delete(c.lines, id)
	}
	c.recomputeLocked()
	return nil
}

// ApplyDiscount reduces the current total by the given percentage. Repeated
// calls compound: each applies to the already-discounted total.
func (c *Cart) ApplyDiscount(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return fmt.Errorf("%w: discount percentage %v outside [0,100]", models.ErrInvalidArgument, percentage)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discount *= 1 - percentage/100
	c.recomputeLocked()
	return nil
}

// Items returns the cart lines ordered by item ID.
func (c *Cart) Items() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Total returns the cached total price after discounts.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Clear empties the cart and resets the total and any applied discount.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[int64]*CartLine)
	c.discount = 1
	c.total = 0
}

func (c *Cart) recomputeLocked() {
	var sum float64
	for _, line := range c.lines {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	c.total = sum * c.discount
}
