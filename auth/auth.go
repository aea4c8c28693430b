// Package auth wraps credential hashing so the rest of the system treats it
// as an opaque one-way function.
package auth

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted digest from a cleartext password.
func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Verify reports whether the password matches the stored digest.
func Verify(password string, digest []byte) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(password)) == nil
}
