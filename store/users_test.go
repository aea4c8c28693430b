package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "furniture-store/model"
)

func TestUsers_CreateAndGet(t *testing.T) {
	users := NewUsers()

	err := users.Create(&models.User{Email: "alice@example.com", Username: "Alice"})
	require.NoError(t, err)

	got, err := users.Get("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Username)

	_, err = users.Get("bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_CreateConflict(t *testing.T) {
	users := NewUsers()
	require.NoError(t, users.Create(&models.User{Email: "alice@example.com", Username: "Alice"}))

	err := users.Create(&models.User{Email: "alice@example.com", Username: "Impostor"})
	assert.ErrorIs(t, err, ErrConflict)

	// First registration is untouched.
	got, err := users.Get("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Username)
}

func TestUsers_SetLoggedIn(t *testing.T) {
	users := NewUsers()
	require.NoError(t, users.Create(&models.User{Email: "alice@example.com"}))

	require.NoError(t, users.SetLoggedIn("alice@example.com", true))
	got, _ := users.Get("alice@example.com")
	assert.True(t, got.LoggedIn)

	require.NoError(t, users.SetLoggedIn("alice@example.com", false))
	got, _ = users.Get("alice@example.com")
	assert.False(t, got.LoggedIn)

	assert.ErrorIs(t, users.SetLoggedIn("ghost@example.com", true), ErrNotFound)
}

func TestUsers_UpdateProfile(t *testing.T) {
	users := NewUsers()
	require.NoError(t, users.Create(&models.User{
		Email:    "alice@example.com",
		Username: "Alice",
		FullName: "Alice Wonderland",
		Address:  "456 Elm St",
		Phone:    "123456789",
	}))

	// Empty fields keep their current values.
	require.NoError(t, users.UpdateProfile("alice@example.com", "", "1 New Rd", ""))

	got, err := users.Get("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice Wonderland", got.FullName)
	assert.Equal(t, "1 New Rd", got.Address)
	assert.Equal(t, "123456789", got.Phone)

	assert.ErrorIs(t, users.UpdateProfile("ghost@example.com", "x", "", ""), ErrNotFound)
}
