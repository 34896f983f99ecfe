// Package session holds the process-wide answer to "who is logged in".
// The Session is constructed explicitly and handed to every component that
// needs it; it is the only writer of the persisted token, and the HTTP
// client reads that token through the token store on every request.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

// State is the session lifecycle position. Valid transitions:
//
//	Unknown       → Anonymous      (no stored token, or stored token invalid)
//	Unknown       → Authenticated  (stored token validated against /me)
//	Anonymous     → Authenticated  (login succeeds)
//	Authenticated → Anonymous      (logout)
//
// A failed login leaves the state untouched at Anonymous. Register never
// changes the state at all: it creates the account, nothing more, and the
// user logs in as a separate step.
type State string

const (
	StateUnknown       State = "unknown"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// TokenStore is the persistence surface the session drives: read the
// stored token, replace it after login, remove it on logout.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// Session is the single source of truth for the authenticated user.
type Session struct {
	client *api.Client
	tokens TokenStore
	user   *models.User
	state  State
}

// authResponse is the body of successful login and register calls.
type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// New returns a Session in StateUnknown. Call Restore before rendering
// anything that depends on authentication, so a stored token does not
// flash an anonymous UI while it is still being validated.
func New(client *api.Client, tokens TokenStore) *Session {
	return &Session{client: client, tokens: tokens, state: StateUnknown}
}

// State returns the current lifecycle position.
func (s *Session) State() State { return s.state }

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool { return s.state == StateAuthenticated }

// User returns the current user, or nil when anonymous.
func (s *Session) User() *models.User { return s.user }

// Login posts credentials to the backend. On success the returned token is
// persisted and the session becomes Authenticated. On failure the prior
// session state is left untouched and the error goes back to the caller
// for display; there is no retry.
func (s *Session) Login(ctx context.Context, creds models.Credentials) error {
	var resp authResponse
	if err := s.client.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return err
	}
	if err := s.tokens.Save(resp.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	user := resp.User
	s.user = &user
	s.state = StateAuthenticated
	return nil
}

// Register creates a new account. It deliberately does not authenticate:
// the backend does return a token, but it is discarded and the session
// state is unchanged. The caller logs in afterwards.
func (s *Session) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	var resp authResponse
	if err := s.client.Post(ctx, "/api/auth/register", reg, &resp); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// Logout clears the in-memory user and removes the persisted token. It
// always succeeds and makes no backend call; an in-flight authenticated
// request may still complete with the old token, which the backend is the
// authority on.
func (s *Session) Logout() {
	s.user = nil
	s.state = StateAnonymous
	_ = s.tokens.Clear()
}

// Restore resolves StateUnknown at startup. With no stored token it lands
// Anonymous immediately. With one, it asks /api/auth/me who the token
// belongs to; on success the session is Authenticated, on any failure the
// stored token is treated as invalid and cleaned up via Logout. The
// returned error reports why a stored token was rejected; the session is
// in a terminal state (Anonymous or Authenticated) either way.
func (s *Session) Restore(ctx context.Context) error {
	if s.tokens.Token() == "" {
		s.state = StateAnonymous
		return nil
	}

	var user models.User
	if err := s.client.Get(ctx, "/api/auth/me", &user); err != nil {
		s.Logout()
		return err
	}
	s.user = &user
	s.state = StateAuthenticated
	return nil
}
