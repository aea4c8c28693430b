package models

// User is a customer account. PasswordHash is a bcrypt digest; the cleartext
// password is never stored and the digest is never serialized.
type User struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	PasswordHash []byte `json:"-"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LoggedIn     bool   `json:"-"`
}
