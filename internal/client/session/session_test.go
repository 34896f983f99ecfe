package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

// memStore is an in-memory TokenStore; the on-disk one has its own tests.
type memStore struct {
	token string
}

func (m *memStore) Token() string          { return m.token }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func newAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "hunter22" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid username or password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"user":  models.User{ID: "u1", Username: creds.Username, Email: "a@example.com"},
			"token": "tok-valid",
		})
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var reg models.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"user":  models.User{ID: "u2", Username: reg.Username, Email: reg.Email},
			"token": "tok-fresh",
		})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-valid" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid token"}`))
			return
		}
		json.NewEncoder(w).Encode(models.User{ID: "u1", Username: "analyst", Email: "a@example.com"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSession(t *testing.T, store *memStore) *Session {
	t.Helper()
	srv := newAuthBackend(t)
	return New(api.New(srv.URL, 0, store), store)
}

func TestSession_StartsUnknown(t *testing.T) {
	s := newSession(t, &memStore{})
	assert.Equal(t, StateUnknown, s.State())
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
}

func TestLogin_Success(t *testing.T) {
	store := &memStore{}
	s := newSession(t, store)

	err := s.Login(context.Background(), models.Credentials{Username: "analyst", Password: "hunter22"})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, "analyst", s.User().Username)
	assert.Equal(t, "tok-valid", store.Token())
}

func TestLogin_BadPasswordLeavesStateUntouched(t *testing.T) {
	store := &memStore{}
	s := newSession(t, store)
	require.NoError(t, s.Restore(context.Background()))
	require.Equal(t, StateAnonymous, s.State())

	err := s.Login(context.Background(), models.Credentials{Username: "analyst", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	store := &memStore{}
	s := newSession(t, store)
	require.NoError(t, s.Restore(context.Background()))

	user, err := s.Register(context.Background(), models.Registration{
		Username: "newbie", Email: "n@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "newbie", user.Username)

	// The account exists, but nothing about the session changed.
	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}

func TestLogout_ClearsEverything(t *testing.T) {
	store := &memStore{}
	s := newSession(t, store)
	require.NoError(t, s.Login(context.Background(), models.Credentials{Username: "analyst", Password: "hunter22"}))

	s.Logout()

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}

func TestLoginThenLogout_TogglesTokenOnRequests(t *testing.T) {
	store := &memStore{}
	s := newSession(t, store)
	ctx := context.Background()
	require.NoError(t, s.Login(ctx, models.Credentials{Username: "analyst", Password: "hunter22"}))

	// With the login token attached, /me resolves the user.
	require.NoError(t, s.Restore(ctx))
	require.Equal(t, StateAuthenticated, s.State())

	s.Logout()

	// Without it, the same call is rejected as anonymous.
	require.NoError(t, s.Restore(ctx))
	require.Equal(t, StateAnonymous, s.State())
}

func TestRestore_NoStoredToken(t *testing.T) {
	s := newSession(t, &memStore{})
	require.NoError(t, s.Restore(context.Background()))
	assert.Equal(t, StateAnonymous, s.State())
}

func TestRestore_ValidStoredToken(t *testing.T) {
	store := &memStore{token: "tok-valid"}
	s := newSession(t, store)

	require.NoError(t, s.Restore(context.Background()))

	assert.Equal(t, StateAuthenticated, s.State())
	require.NotNil(t, s.User())
	assert.Equal(t, "analyst", s.User().Username)
}

func TestRestore_RejectedTokenIsCleanedUp(t *testing.T) {
	store := &memStore{token: "tok-stale"}
	s := newSession(t, store)

	err := s.Restore(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))

	assert.Equal(t, StateAnonymous, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}
