package store

import (
	"fmt"
	"sync"

	models "furniture-store/model"
)

// Users is the account directory, keyed by email.
type Users struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

// NewUsers creates an empty directory.
func NewUsers() *Users {
	return &Users{byEmail: make(map[string]*models.User)}
}

// Create registers a new account. The email must be unused.
func (u *Users) Create(user *models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.byEmail[user.Email]; ok {
		return fmt.Errorf("user %s: %w", user.Email, ErrConflict)
	}
	cp := *user
	u.byEmail[user.Email] = &cp
	return nil
}

// Get returns a copy of the account record for an email.
func (u *Users) Get(email string) (models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	user, ok := u.byEmail[email]
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	return *user, nil
}

// SetLoggedIn flips the session flag for an account.
func (u *Users) SetLoggedIn(email string, loggedIn bool) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.byEmail[email]
	if !ok {
		return fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	user.LoggedIn = loggedIn
	return nil
}

// UpdateProfile overwrites the mutable profile fields. Empty arguments keep
// the current value; email and credential never change through this path.
func (u *Users) UpdateProfile(email, fullName, address, phone string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.byEmail[email]
	if !ok {
		return fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if address != "" {
		user.Address = address
	}
	if phone != "" {
		user.Phone = phone
	}
	return nil
}
