package service

import (
	models "furniture-store/model"
	"furniture-store/store"
)

type ServiceInterface interface {
	SignUp(username, fullName, email, password, address, phone string) error
	Login(email, password string) (ProfileDTO, error)
	Logout(email string) error
	Profile(email string) (ProfileDTO, error)
	UpdateProfile(email, fullName, address, phone string) error

	ListItems() []ItemDTO
	SearchItems(f store.SearchFilter) []ItemDTO
	AddStock(item models.CatalogItem, qty int) error
	UpdateStock(id int64, qty int) error
	RemoveItem(id int64) error
	SetPrice(id int64, price float64) error

	AddToCart(email string, id int64, qty int) error
	RemoveFromCart(email string, id int64, qty int) error
	GetCart(email string) (CartDTO, error)
	ApplyCartDiscount(email string, percentage float64) (float64, error)

	Checkout(email, paymentMethod string) (models.Order, error)
	OrderHistory(email string) ([]models.Order, error)
	UpdateOrderStatus(email, orderID, status string) error
}
