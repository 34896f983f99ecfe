// Package models holds server-side storage shapes. The wire-level record
// types live in internal/models; this package adds what never leaves the
// server, such as password hashes.
package models

import "github.com/dmitrijs2005/ctibook/internal/models"

// StoredUser is an account as the repository keeps it. PasswordHash is a
// bcrypt hash; the plain password exists only inside the register/login
// request handling.
type StoredUser struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
}

// Public returns the wire-level view of the account.
func (u StoredUser) Public() models.User {
	return models.User{ID: u.ID, Username: u.Username, Email: u.Email}
}
