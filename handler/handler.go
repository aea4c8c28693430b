package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	models "furniture-store/model"
	"furniture-store/service"
	"furniture-store/store"
)

// Handler is the HTTP layer that talks to service.Service
type Handler struct {
	svc service.ServiceInterface
}

// NewHandler returns a Handler instance
func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{svc: s}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Users
	r.HandleFunc("/signup", h.SignUp).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")
	r.HandleFunc("/users/{email}", h.GetProfile).Methods("GET")
	r.HandleFunc("/users/{email}", h.UpdateProfile).Methods("PUT")

	// Catalog and inventory
	r.HandleFunc("/items", h.ListItems).Methods("GET")
	r.HandleFunc("/items", h.AddItem).Methods("POST")
	r.HandleFunc("/items/{id}/price", h.SetPrice).Methods("PUT")
	r.HandleFunc("/inventory/{id}", h.UpdateStock).Methods("PUT")
	r.HandleFunc("/inventory/{id}", h.RemoveItem).Methods("DELETE")

	// Cart
	r.HandleFunc("/cart", h.GetCart).Methods("GET")
	r.HandleFunc("/cart/add", h.AddToCart).Methods("POST")
	r.HandleFunc("/cart/remove", h.RemoveFromCart).Methods("POST")
	r.HandleFunc("/cart/discount", h.ApplyDiscount).Methods("POST")

	// Orders
	r.HandleFunc("/checkout", h.Checkout).Methods("POST")
	r.HandleFunc("/orders", h.ListOrders).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.UpdateOrderStatus).Methods("PUT")
}

// --- request / response shapes ---

type signUpReq struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateReq struct {
	FullName string `json:"full_name,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type addItemReq struct {
	Item     models.CatalogItem `json:"item"`
	Quantity int                `json:"quantity"`
}

type cartItemReq struct {
	Email    string `json:"email"`
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type discountReq struct {
	Email      string  `json:"email"`
	Percentage float64 `json:"percentage"`
}

type checkoutReq struct {
	Email         string `json:"email"`
	PaymentMethod string `json:"payment_method"`
}

type setPriceReq struct {
	Price float64 `json:"price"`
}

type statusReq struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// errStatus maps the service's error kinds to HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict), errors.Is(err, store.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, service.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func fail(w http.ResponseWriter, err error) {
	writeErr(w, errStatus(err), err.Error())
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// --- users ---

// SignUp handles POST /signup
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.SignUp(req.Username, req.FullName, req.Email, req.Password, req.Address, req.Phone); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	profile, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Logout handles POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.Logout(req.Email); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// GetProfile handles GET /users/{email}
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile(mux.Vars(r)["email"])
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /users/{email}
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.UpdateProfile(mux.Vars(r)["email"], req.FullName, req.Address, req.Phone); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// --- catalog / inventory ---

// ListItems handles GET /items with optional title, category, min_price and
// max_price query filters.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.SearchFilter{
		Title:    q.Get("title"),
		Category: models.Category(q.Get("category")),
	}
	if v := q.Get("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid min_price")
			return
		}
		f.MinPrice = &p
	}
	if v := q.Get("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		f.MaxPrice = &p
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": h.svc.SearchItems(f)})
}

// AddItem handles POST /items
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Item.Title == "" {
		writeErr(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := h.svc.AddStock(req.Item, req.Quantity); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": req.Item.ID})
}

// SetPrice handles PUT /items/{id}/price
func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid item id")
		return
	}
	var req setPriceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.svc.SetPrice(id, req.Price); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateStock handles PUT /inventory/{id}?quantity=N
func (h *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid item id")
		return
	}
	qty, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "quantity required")
		return
	}
	if err := h.svc.UpdateStock(id, qty); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RemoveItem handles DELETE /inventory/{id}
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid item id")
		return
	}
	if err := h.svc.RemoveItem(id); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// --- cart ---

// GetCart handles GET /cart?email=...
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeErr(w, http.StatusBadRequest, "email required")
		return
	}
	cart, err := h.svc.GetCart(email)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// AddToCart handles POST /cart/add
// body: { "email": "...", "item_id": 101, "quantity": 2 }
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.svc.AddToCart(req.Email, req.ItemID, req.Quantity); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "added"})
}

// RemoveFromCart handles POST /cart/remove
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.svc.RemoveFromCart(req.Email, req.ItemID, req.Quantity); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// ApplyDiscount handles POST /cart/discount
func (h *Handler) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req discountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErr(w, http.StatusBadRequest, "email is required")
		return
	}
	total, err := h.svc.ApplyCartDiscount(req.Email, req.Percentage)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"total": total})
}

// --- checkout / orders ---

// Checkout handles POST /checkout
// body: { "email": "...", "payment_method": "Credit Card" }
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErr(w, http.StatusBadRequest, "email required")
		return
	}
	order, err := h.svc.Checkout(req.Email, req.PaymentMethod)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders?email=...
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeErr(w, http.StatusBadRequest, "email required")
		return
	}
	orders, err := h.svc.OrderHistory(email)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// UpdateOrderStatus handles PUT /orders/{id}/status
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErr(w, http.StatusBadRequest, "email required")
		return
	}
	if err := h.svc.UpdateOrderStatus(req.Email, mux.Vars(r)["id"], req.Status); err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
