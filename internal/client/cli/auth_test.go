package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ctibook/internal/client/api"
	"github.com/dmitrijs2005/ctibook/internal/client/session"
	"github.com/dmitrijs2005/ctibook/internal/models"
)

type memStore struct{ token string }

func (m *memStore) Token() string           { return m.token }
func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Clear() error            { m.token = ""; return nil }

func stubAuthInput(t *testing.T, username, password string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return username, nil }
	getPassword = func(string, io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })
}

// newAuthApp builds an App whose session talks to a stub auth backend.
func newAuthApp(t *testing.T, input string) (*App, *memStore, *bytes.Buffer) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		json.NewDecoder(r.Body).Decode(&creds)
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
		json.NewDecoder(r.Body).Decode(&reg)
		if reg.Username == "taken" {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"error":"username already taken"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"user":  models.User{ID: "u2", Username: reg.Username, Email: reg.Email},
			"token": "tok-fresh",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	store := &memStore{}
	client := api.New(srv.URL, 0, store)
	var out bytes.Buffer
	app := &App{
		session: session.New(client, store),
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}
	return app, store, &out
}

func TestLogin_Success(t *testing.T) {
	stubAuthInput(t, "analyst", "hunter22")
	app, store, out := newAuthApp(t, "")

	require.NoError(t, app.Login(context.Background()))

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "tok-valid", store.token)
	assert.Contains(t, out.String(), "Logged in as analyst")
	assert.Equal(t, "(analyst)", app.status())
}

func TestLogin_WrongPassword(t *testing.T) {
	stubAuthInput(t, "analyst", "wrong")
	app, store, out := newAuthApp(t, "")

	err := app.Login(context.Background())
	require.Error(t, err)

	assert.False(t, app.isLoggedIn())
	assert.Empty(t, store.token)
	assert.Contains(t, out.String(), "Invalid username or password")
}

func TestLogin_EmptyFieldsFailLocally(t *testing.T) {
	stubAuthInput(t, "", "")
	app, _, out := newAuthApp(t, "")

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Username is required")
	assert.Contains(t, out.String(), "Password is required")
}

func TestRegister_CreatesAccountWithoutLogin(t *testing.T) {
	origPass := getPassword
	getPassword = func(string, io.Writer) (string, error) { return "hunter22", nil }
	t.Cleanup(func() { getPassword = origPass })

	app, store, out := newAuthApp(t, "newbie\nn@example.com\n")

	require.NoError(t, app.Register(context.Background()))

	assert.Contains(t, out.String(), `Account "newbie" created. Use 'login' to sign in.`)
	assert.False(t, app.isLoggedIn())
	assert.Empty(t, store.token)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	origPass := getPassword
	getPassword = func(string, io.Writer) (string, error) { return "hunter22", nil }
	t.Cleanup(func() { getPassword = origPass })

	app, _, out := newAuthApp(t, "taken\nn@example.com\n")

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "username already taken")
}

func TestRegister_Cancel(t *testing.T) {
	app, _, _ := newAuthApp(t, "/cancel\nx@example.com\n")
	require.NoError(t, app.Register(context.Background()))
	assert.False(t, app.isLoggedIn())
}

func TestLogout(t *testing.T) {
	stubAuthInput(t, "analyst", "hunter22")
	app, store, out := newAuthApp(t, "")
	require.NoError(t, app.Login(context.Background()))

	require.NoError(t, app.Logout(context.Background()))

	assert.False(t, app.isLoggedIn())
	assert.Empty(t, store.token)
	assert.Contains(t, out.String(), "Logged out.")
	assert.Equal(t, "", app.status())
}

func TestWhoAmI(t *testing.T) {
	stubAuthInput(t, "analyst", "hunter22")
	app, _, out := newAuthApp(t, "")

	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in.")

	require.NoError(t, app.Login(context.Background()))
	out.Reset()
	require.NoError(t, app.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "analyst <a@example.com>")
}
