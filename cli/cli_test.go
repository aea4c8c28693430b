package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "furniture-store/model"
	"furniture-store/service"
	"furniture-store/store"
)

func newService(t *testing.T) (*service.Service, *store.Inventory) {
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
	return svc, inv
}

func TestScriptedShoppingSession(t *testing.T) {
	svc, inv := newService(t)

	// Sign up, add two tables, check out, log out, exit.
	script := strings.Join([]string{
		"2",                 // Sign Up
		"alice@example.com", // email
		"Alice",             // username
		"Alice Wonderland",  // full name
		"secret",            // password
		"456 Elm St",        // address
		"123456789",         // phone
		"2",                 // Add Item to Cart
		"101",               // item ID
		"2",                 // quantity
		"4",                 // View Cart
		"5",                 // Checkout
		"Credit Card",       // payment method
		"7",                 // Log Out
		"3",                 // Exit
	}, "\n") + "\n"

	var out bytes.Buffer
	New(svc, strings.NewReader(script), &out).Run()

	output := out.String()
	assert.Contains(t, output, "registered successfully")
	assert.Contains(t, output, "Total: $300.00")
	assert.Contains(t, output, "Order placed successfully")
	assert.Contains(t, output, "Goodbye!")

	assert.Equal(t, 3, inv.GetQuantity(101))
}

func TestLoginFailureStaysAtTopMenu(t *testing.T) {
	svc, _ := newService(t)

	script := strings.Join([]string{
		"1",                 // Log In
		"ghost@example.com", // unknown email
		"pw",
		"3", // Exit
	}, "\n") + "\n"

	var out bytes.Buffer
	New(svc, strings.NewReader(script), &out).Run()

	output := out.String()
	assert.Contains(t, output, "invalid email or password")
	assert.NotContains(t, output, "Shopping Cart Menu")
}

func TestRunStopsOnEOF(t *testing.T) {
	svc, _ := newService(t)

	var out bytes.Buffer
	New(svc, strings.NewReader(""), &out).Run()
	assert.Contains(t, out.String(), "Goodbye!")
}
