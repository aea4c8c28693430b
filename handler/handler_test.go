package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "furniture-store/model"
	"furniture-store/service"
	"furniture-store/store"
)

func newServer(t *testing.T) (*httptest.Server, *store.Inventory) {
	t.Helper()

	inv := store.NewInventory()
	users := store.NewUsers()
	carts := store.NewCarts()
	orders := store.NewOrderRegistry()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewService(inv, users, carts, orders, log)

	require.NoError(t, inv.AddItem(models.CatalogItem{
		ID: 101, Title: "Dining Table", Category: models.CategoryTable, Price: 150,
	}, 5))

	r := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, inv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func signUpAndLogin(t *testing.T, srv *httptest.Server, email string) {
	t.Helper()
	resp, _ := doJSON(t, "POST", srv.URL+"/signup", map[string]string{
		"username": "alice", "full_name": "Alice W", "email": email, "password": "secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, "POST", srv.URL+"/login", map[string]string{
		"email": email, "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignUpLoginAndConflict(t *testing.T) {
	srv, _ := newServer(t)
	signUpAndLogin(t, srv, "alice@example.com")

	// Duplicate registration.
	resp, body := doJSON(t, "POST", srv.URL+"/signup", map[string]string{
		"username": "eve", "email": "alice@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body["error"]), "already exists")

	// Bad password.
	resp, _ = doJSON(t, "POST", srv.URL+"/login", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListItems(t *testing.T) {
	srv, _ := newServer(t)

	resp, body := doJSON(t, "GET", srv.URL+"/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []service.ItemDTO
	require.NoError(t, json.Unmarshal(body["items"], &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(101), items[0].ID)
	assert.Equal(t, 5, items[0].Available)

	// Filter that matches nothing.
	resp, body = doJSON(t, "GET", srv.URL+"/items?title=wardrobe", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body["items"], &items))
	assert.Empty(t, items)
}

func TestCheckoutFlow(t *testing.T) {
	srv, inv := newServer(t)
	signUpAndLogin(t, srv, "alice@example.com")

	resp, _ := doJSON(t, "POST", srv.URL+"/cart/add", map[string]interface{}{
		"email": "alice@example.com", "item_id": 101, "quantity": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, "GET", srv.URL+"/cart?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "300", string(body["total"]))

	resp, body = doJSON(t, "POST", srv.URL+"/checkout", map[string]string{
		"email": "alice@example.com", "payment_method": "Credit Card",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, "300", string(body["total"]))
	assert.JSONEq(t, `"pending"`, string(body["status"]))

	assert.Equal(t, 3, inv.GetQuantity(101))

	// Cart is empty after checkout.
	resp, body = doJSON(t, "GET", srv.URL+"/cart?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "0", string(body["total"]))

	// Exactly one order in the history.
	resp, body = doJSON(t, "GET", srv.URL+"/orders?email=alice@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(body["orders"], &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, 300.0, orders[0].Total)
}

func TestCartAddOutOfStock(t *testing.T) {
	srv, inv := newServer(t)
	signUpAndLogin(t, srv, "alice@example.com")

	resp, body := doJSON(t, "POST", srv.URL+"/cart/add", map[string]interface{}{
		"email": "alice@example.com", "item_id": 101, "quantity": 10,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body["error"]), "insufficient stock")
	assert.Equal(t, 5, inv.GetQuantity(101))
}

func TestCheckoutWithoutLogin(t *testing.T) {
	srv, _ := newServer(t)
	resp, _ := doJSON(t, "POST", srv.URL+"/signup", map[string]string{
		"username": "bob", "email": "bob@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, "POST", srv.URL+"/checkout", map[string]string{
		"email": "bob@example.com", "payment_method": "PayPal",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInventoryAdmin(t *testing.T) {
	srv, inv := newServer(t)

	resp, _ := doJSON(t, "PUT", srv.URL+"/inventory/101?quantity=7", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, inv.GetQuantity(101))

	resp, _ = doJSON(t, "PUT", srv.URL+"/inventory/999?quantity=1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, "PUT", srv.URL+fmt.Sprintf("/inventory/%d?quantity=-1", 101), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, "DELETE", srv.URL+"/inventory/101", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, inv.GetQuantity(101))
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	srv, _ := newServer(t)
	signUpAndLogin(t, srv, "alice@example.com")

	resp, _ := doJSON(t, "POST", srv.URL+"/cart/add", map[string]interface{}{
		"email": "alice@example.com", "item_id": 101, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, "POST", srv.URL+"/checkout", map[string]string{
		"email": "alice@example.com", "payment_method": "Credit Card",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var orderID string
	require.NoError(t, json.Unmarshal(body["id"], &orderID))

	resp, _ = doJSON(t, "PUT", srv.URL+"/orders/"+orderID+"/status", map[string]string{
		"email": "alice@example.com", "status": "shipped",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Reverting is rejected.
	resp, _ = doJSON(t, "PUT", srv.URL+"/orders/"+orderID+"/status", map[string]string{
		"email": "alice@example.com", "status": "pending",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
