// Package cli is the interactive text interface: the same operations as the
// HTTP API, driven by a menu loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"furniture-store/service"
)

type CLI struct {
	svc service.ServiceInterface
	in  *bufio.Scanner
	out io.Writer
}

func New(svc service.ServiceInterface, in io.Reader, out io.Writer) *CLI {
	return &CLI{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run drives the top-level menu until the user exits or input ends.
func (c *CLI) Run() {
	for {
		c.printf("\nWelcome to the Online Furniture Store!\n")
		c.printf("1. Log In\n2. Sign Up\n3. Exit\n")

		switch c.prompt("Choose an option: ") {
		case "1":
			if email, ok := c.logIn(); ok {
				c.session(email)
			}
		case "2":
			if email, ok := c.signUp(); ok {
				c.session(email)
			}
		case "3", "":
			c.printf("Goodbye!\n")
			return
		default:
			c.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (c *CLI) signUp() (string, bool) {
	c.printf("\nSign Up\n")
	email := c.prompt("Enter email: ")
	username := c.prompt("Enter username: ")
	fullName := c.prompt("Enter full name: ")
	password := c.prompt("Enter password: ")
	address := c.prompt("Enter address: ")
	phone := c.prompt("Enter phone number: ")

	if err := c.svc.SignUp(username, fullName, email, password, address, phone); err != nil {
		c.printf("Error: %v\n", err)
		return "", false
	}
	c.printf("User %s registered successfully!\n", username)

	// Log straight in so the new user lands in the shopping menu.
	if _, err := c.svc.Login(email, password); err != nil {
		c.printf("Error: %v\n", err)
		return "", false
	}
	return email, true
}

func (c *CLI) logIn() (string, bool) {
	c.printf("\nLog In\n")
	email := c.prompt("Enter email: ")
	password := c.prompt("Enter password: ")

	profile, err := c.svc.Login(email, password)
	if err != nil {
		c.printf("Error: %v\n", err)
		return "", false
	}
	c.printf("User %s logged in successfully.\n", profile.Username)
	return email, true
}

func (c *CLI) session(email string) {
	for {
		c.printf("\nShopping Cart Menu:\n")
		c.printf("1. Browse Items\n2. Add Item to Cart\n3. Remove Item from Cart\n4. View Cart\n5. Checkout\n6. Order History\n7. Log Out\n")

		switch c.prompt("Choose an option: ") {
		case "1":
			c.browse()
		case "2":
			c.addToCart(email)
		case "3":
			c.removeFromCart(email)
		case "4":
			c.viewCart(email)
		case "5":
			c.checkout(email)
		case "6":
			c.orderHistory(email)
		case "7", "":
			c.printf("Logging out...\n")
			if err := c.svc.Logout(email); err != nil {
				c.printf("Error: %v\n", err)
			}
			return
		default:
			c.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (c *CLI) browse() {
	for _, item := range c.svc.ListItems() {
		c.printf("[%d] %s (%s) $%.2f - %d in stock\n", item.ID, item.Title, item.Category, item.Price, item.Available)
	}
}

func (c *CLI) addToCart(email string) {
	id, qty, ok := c.promptItem()
	if !ok {
		return
	}
	if err := c.svc.AddToCart(email, id, qty); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Added to cart.\n")
}

func (c *CLI) removeFromCart(email string) {
	id, qty, ok := c.promptItem()
	if !ok {
		return
	}
	if err := c.svc.RemoveFromCart(email, id, qty); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Removed from cart.\n")
}

func (c *CLI) viewCart(email string) {
	cart, err := c.svc.GetCart(email)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(cart.Items) == 0 {
		c.printf("Your cart is empty.\n")
		return
	}
	for _, line := range cart.Items {
		c.printf("item %d x%d @ $%.2f\n", line.ItemID, line.Quantity, line.UnitPrice)
	}
	c.printf("Total: $%.2f\n", cart.Total)
}

func (c *CLI) checkout(email string) {
	c.printf("\n--- Checkout Process ---\n")
	method := c.prompt("Enter payment method (Credit Card, PayPal): ")

	order, err := c.svc.Checkout(email, method)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Order placed successfully!\n%s\nThank you for shopping with us!\n", order.String())
}

func (c *CLI) orderHistory(email string) {
	orders, err := c.svc.OrderHistory(email)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		c.printf("No orders found in your history.\n")
		return
	}
	for _, o := range orders {
		c.printf("%s\n", o.String())
	}
}

func (c *CLI) promptItem() (int64, int, bool) {
	id, err := strconv.ParseInt(c.prompt("Enter item ID: "), 10, 64)
	if err != nil {
		c.printf("Error: invalid item ID.\n")
		return 0, 0, false
	}
	qty, err := strconv.Atoi(c.prompt("Enter quantity: "))
	if err != nil {
		c.printf("Error: invalid quantity.\n")
		return 0, 0, false
	}
	return id, qty, true
}

func (c *CLI) prompt(label string) string {
	c.printf("%s", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *CLI) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
