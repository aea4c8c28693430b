package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	models "furniture-store/model"
)

// Inventory is the authoritative stock ledger: catalog records plus a
// non-negative quantity per item ID. It is safe for concurrent use.
type Inventory struct {
	mu      sync.RWMutex
	catalog map[int64]models.CatalogItem
	stock   map[int64]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		catalog: make(map[int64]models.CatalogItem),
		stock:   make(map[int64]int),
	}
}

// ItemStock pairs a catalog record with its current stock level.
type ItemStock struct {
	Item     models.CatalogItem `json:"item"`
	Quantity int                `json:"quantity"`
}

// SearchFilter narrows Search results. Zero-valued fields are ignored.
type SearchFilter struct {
	Title    string
	Category models.Category
	MinPrice *float64
	MaxPrice *float64
}

// AddItem registers a catalog record with starting stock, or increases stock
// for an already known item.
func (inv *Inventory) AddItem(item models.CatalogItem, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: quantity %d must be >= 0", models.ErrInvalidArgument, qty)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price %v must be >= 0", models.ErrInvalidArgument, item.Price)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", models.ErrInvalidArgument, item.Category)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, known := inv.catalog[item.ID]; !known {
		inv.catalog[item.ID] = item
	}
	inv.stock[item.ID] += qty
	return nil
}

// RemoveItem deletes the stock entry and catalog record entirely.
func (inv *Inventory) RemoveItem(id int64) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.catalog[id]; !ok {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	delete(inv.catalog, id)
	delete(inv.stock, id)
	return nil
}

// UpdateQuantity sets the absolute stock level for a known item.
func (inv *Inventory) UpdateQuantity(id int64, qty int) error {
	if qty < 0 {
		return fmt.Errorf("%w: quantity %d must be >= 0", models.ErrInvalidArgument, qty)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if _, ok := inv.catalog[id]; !ok {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	inv.stock[id] = qty
	return nil
}

// GetQuantity returns the current stock for an item. An untracked item counts
// as zero stock, not an error.
func (inv *Inventory) GetQuantity(id int64) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.stock[id]
}

// Item returns the catalog record for an item ID.
func (inv *Inventory) Item(id int64) (models.CatalogItem, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	item, ok := inv.catalog[id]
	if !ok {
		return models.CatalogItem{}, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return item, nil
}

// SetPrice updates the catalog price of an item. Orders created before the
// change keep their snapshot prices.
func (inv *Inventory) SetPrice(id int64, price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price %v must be >= 0", models.ErrInvalidArgument, price)
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	item, ok := inv.catalog[id]
	if !ok {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	item.Price = price
	inv.catalog[id] = item
	return nil
}

// Items lists every catalog record with its stock, ordered by item ID.
func (inv *Inventory) Items() []ItemStock {
	return inv.Search(SearchFilter{})
}

// Search returns the catalog records matching the filter, ordered by item ID.
// A filter that matches nothing yields an empty slice.
func (inv *Inventory) Search(f SearchFilter) []ItemStock {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]ItemStock, 0, len(inv.catalog))
	for id, item := range inv.catalog {
		if !matches(item, f) {
			continue
		}
		out = append(out, ItemStock{Item: item, Quantity: inv.stock[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}

func matches(item models.CatalogItem, f SearchFilter) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(item.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && item.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	return true
}

// CheckStock verifies that every requested quantity is currently available.
// It reports the lowest-numbered failing item.
func (inv *Inventory) CheckStock(wanted map[int64]int) error {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.checkLocked(wanted)
}

// Debit decrements stock for every line, or fails without touching anything.
// Validation and decrement happen under one lock so a concurrent debit cannot
// drive stock negative.
func (inv *Inventory) Debit(wanted map[int64]int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if err := inv.checkLocked(wanted); err != nil {
		return err
	}
	for id, qty := range wanted {
		inv.stock[id] -= qty
	}
	return nil
}

func (inv *Inventory) checkLocked(wanted map[int64]int) error {
	ids := make([]int64, 0, len(wanted))
	for id := range wanted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if qty := wanted[id]; inv.stock[id] < qty {
			return fmt.Errorf("item %d: %w (requested %d, available %d)", id, ErrOutOfStock, qty, inv.stock[id])
		}
	}
	return nil
}
