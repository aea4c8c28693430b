package store

import models "furniture-store/model"

// InventoryStore is the stock ledger surface the service layer depends on.
type InventoryStore interface {
	AddItem(item models.CatalogItem, qty int) error
	RemoveItem(id int64) error
	UpdateQuantity(id int64, qty int) error
	GetQuantity(id int64) int
	Item(id int64) (models.CatalogItem, error)
	SetPrice(id int64, price float64) error
	Items() []ItemStock
	Search(f SearchFilter) []ItemStock
	CheckStock(wanted map[int64]int) error
	Debit(wanted map[int64]int) error
}

// UserStore is the account directory surface.
type UserStore interface {
	Create(user *models.User) error
	Get(email string) (models.User, error)
	SetLoggedIn(email string, loggedIn bool) error
	UpdateProfile(email, fullName, address, phone string) error
}

// OrderStore is the order registry surface.
type OrderStore interface {
	Record(order *models.Order)
	OrdersForUser(email string) []*models.Order
	Order(email, orderID string) (*models.Order, error)
}

// CartStore hands out per-user carts.
type CartStore interface {
	ForUser(email string) *Cart
}

var (
	_ InventoryStore = (*Inventory)(nil)
	_ UserStore      = (*Users)(nil)
	_ OrderStore     = (*OrderRegistry)(nil)
	_ CartStore      = (*Carts)(nil)
)
