// Package shared holds the sentinel errors the backend layers agree on.
// Repositories and services return these; the HTTP layer maps them to
// status codes.
package shared

import "errors"

var (
	// ErrNotFound: no record behind the given identifier.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists: unique constraint violated (duplicate username).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials: unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken: the bearer token failed signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
)
