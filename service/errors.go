package service

import "errors"

var (
	// ErrUnauthenticated is returned on login with an unknown email or a
	// password that does not match the stored digest.
	ErrUnauthenticated = errors.New("invalid email or password")

	// ErrUnauthorized is returned when an action requiring login is attempted
	// while logged out.
	ErrUnauthorized = errors.New("login required")

	// ErrEmptyCart is returned on checkout of a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
)
