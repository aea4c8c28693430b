package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"furniture-store/auth"
	models "furniture-store/model"
	"furniture-store/store"
)

type Service struct {
	inv    store.InventoryStore
	users  store.UserStore
	carts  store.CartStore
	orders store.OrderStore
	log    *slog.Logger
}

func NewService(inv store.InventoryStore, users store.UserStore, carts store.CartStore, orders store.OrderStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{inv: inv, users: users, carts: carts, orders: orders, log: log}
}

// --- users ---

func (s *Service) SignUp(username, fullName, email, password, address, phone string) error {
	if email == "" || username == "" {
		return fmt.Errorf("%w: email and username required", models.ErrInvalidArgument)
	}
	if password == "" {
		return fmt.Errorf("%w: password required", models.ErrInvalidArgument)
	}
	digest, err := auth.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: digest,
		Address:      address,
		Phone:        phone,
	}
	if err := s.users.Create(user); err != nil {
		return err
	}
	// Provision an empty cart alongside the account.
	s.carts.ForUser(email)
	s.log.Info("user registered", "email", email, "username", username)
	return nil
}

func (s *Service) Login(email, password string) (ProfileDTO, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return ProfileDTO{}, ErrUnauthenticated
	}
	if !auth.Verify(password, user.PasswordHash) {
		return ProfileDTO{}, ErrUnauthenticated
	}
	if err := s.users.SetLoggedIn(email, true); err != nil {
		return ProfileDTO{}, err
	}
	s.log.Info("user logged in", "email", email)
	user.LoggedIn = true
	return toProfile(user, nil), nil
}

func (s *Service) Logout(email string) error {
	return s.users.SetLoggedIn(email, false)
}

func (s *Service) Profile(email string) (ProfileDTO, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return ProfileDTO{}, err
	}
	return toProfile(user, s.orders.OrdersForUser(email)), nil
}

func (s *Service) UpdateProfile(email, fullName, address, phone string) error {
	user, err := s.users.Get(email)
	if err != nil {
		return err
	}
	if !user.LoggedIn {
		return fmt.Errorf("manage profile: %w", ErrUnauthorized)
	}
	return s.users.UpdateProfile(email, fullName, address, phone)
}

// --- catalog / inventory ---

func (s *Service) ListItems() []ItemDTO {
	return toItemDTOs(s.inv.Items())
}

func (s *Service) SearchItems(f store.SearchFilter) []ItemDTO {
	return toItemDTOs(s.inv.Search(f))
}

func (s *Service) AddStock(item models.CatalogItem, qty int) error {
	return s.inv.AddItem(item, qty)
}

func (s *Service) UpdateStock(id int64, qty int) error {
	return s.inv.UpdateQuantity(id, qty)
}

func (s *Service) RemoveItem(id int64) error {
	return s.inv.RemoveItem(id)
}

func (s *Service) SetPrice(id int64, price float64) error {
	return s.inv.SetPrice(id, price)
}

// --- cart ---

func (s *Service) AddToCart(email string, id int64, qty int) error {
	if _, err := s.users.Get(email); err != nil {
		return err
	}
	return s.carts.ForUser(email).AddFurniture(s.inv, id, qty)
}

func (s *Service) RemoveFromCart(email string, id int64, qty int) error {
	if _, err := s.users.Get(email); err != nil {
		return err
	}
	return s.carts.ForUser(email).RemoveFurniture(id, qty)
}

func (s *Service) GetCart(email string) (CartDTO, error) {
	if _, err := s.users.Get(email); err != nil {
		return CartDTO{}, err
	}
	cart := s.carts.ForUser(email)
	return CartDTO{Items: cart.Items(), Total: cart.Total()}, nil
}

func (s *Service) ApplyCartDiscount(email string, percentage float64) (float64, error) {
	if _, err := s.users.Get(email); err != nil {
		return 0, err
	}
	cart := s.carts.ForUser(email)
	if err := cart.ApplyDiscount(percentage); err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// --- checkout ---

// Checkout converts the user's cart into a debited inventory and a recorded
// order. Stock for every line is verified before anything is debited, so a
// failing line leaves the inventory untouched and the cart intact for retry.
func (s *Service) Checkout(email, paymentMethod string) (models.Order, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return models.Order{}, err
	}
	if !user.LoggedIn {
		return models.Order{}, fmt.Errorf("checkout: %w", ErrUnauthorized)
	}

	cart := s.carts.ForUser(email)
	lines := cart.Items()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	wanted := make(map[int64]int, len(lines))
	for _, line := range lines {
		wanted[line.ItemID] = line.Quantity
	}
	if err := s.inv.CheckStock(wanted); err != nil {
		return models.Order{}, err
	}

	total := cart.Total()

	// Payment is mocked: always succeeds in this scope.
	s.log.Info("payment processed", "email", email, "amount", total, "method", paymentMethod)

	if err := s.inv.Debit(wanted); err != nil {
		return models.Order{}, err
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		UserEmail: email,
		Items:     toOrderLines(lines),
		Total:     total,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	s.orders.Record(order)
	cart.Clear()

	s.log.Info("order placed", "email", email, "order_id", order.ID, "total", order.Total)
	return *order, nil
}

// --- orders ---

func (s *Service) OrderHistory(email string) ([]models.Order, error) {
	user, err := s.users.Get(email)
	if err != nil {
		return nil, err
	}
	if !user.LoggedIn {
		return nil, fmt.Errorf("order history: %w", ErrUnauthorized)
	}
	orders := s.orders.OrdersForUser(email)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *Service) UpdateOrderStatus(email, orderID, status string) error {
	next, err := models.ParseOrderStatus(status)
	if err != nil {
		return err
	}
	order, err := s.orders.Order(email, orderID)
	if err != nil {
		return err
	}
	return order.UpdateStatus(next)
}

// --- DTOs ---

type ItemDTO struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Category    models.Category `json:"category"`
	Price       float64         `json:"price"`
	Description string          `json:"description,omitempty"`
	Available   int             `json:"available_quantity"`
}

type CartDTO struct {
	Items []store.CartLine `json:"items"`
	Total float64          `json:"total"`
}

type ProfileDTO struct {
	Email    string         `json:"email"`
	Username string         `json:"username"`
	FullName string         `json:"full_name"`
	Address  string         `json:"address,omitempty"`
	Phone    string         `json:"phone,omitempty"`
	Orders   []models.Order `json:"orders,omitempty"`
}

func toItemDTOs(rows []store.ItemStock) []ItemDTO {
	out := make([]ItemDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ItemDTO{
			ID:          r.Item.ID,
			Title:       r.Item.Title,
			Category:    r.Item.Category,
			Price:       r.Item.Price,
			Description: r.Item.Description,
			Available:   r.Quantity,
		})
	}
	return out
}

func toOrderLines(lines []store.CartLine) []models.OrderLine {
	out := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.OrderLine{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return out
}

func toProfile(user models.User, orders []*models.Order) ProfileDTO {
	p := ProfileDTO{
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
		Address:  user.Address,
		Phone:    user.Phone,
	}
	for _, o := range orders {
		p.Orders = append(p.Orders, *o)
	}
	return p
}
