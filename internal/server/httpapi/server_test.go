package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ctibook/internal/logging"
	"github.com/dmitrijs2005/ctibook/internal/models"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ctibook/internal/server/services"
)

// testClient drives the full router over httptest, carrying a token once
// one has been acquired.
type testClient struct {
	t     *testing.T
	srv   *httptest.Server
	token string
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	secret := []byte("test-secret")
	repos := repomanager.NewMemoryManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := NewServer(logger,
		services.NewUserService(repos.Users(), secret, time.Hour),
		services.NewActorService(repos.Actors()),
		services.NewIncidentService(repos.Incidents()),
		secret)
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return &testClient{t: t, srv: srv}
}

func (c *testClient) do(method, path string, body any) (*http.Response, []byte) {
	c.t.Helper()
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.srv.URL+path, buf)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, data
}

func (c *testClient) signup(username string) models.User {
	c.t.Helper()
	resp, data := c.do(http.MethodPost, "/api/auth/register", models.Registration{
		Username: username, Email: username + "@example.com", Password: "hunter22",
	})
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, string(data))

	var out struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(data, &out))
	c.token = out.Token
	return out.User
}

func errorMessage(t *testing.T, data []byte) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Error
}

func TestRegister(t *testing.T) {
	c := newTestClient(t)

	user := c.signup("analyst")
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "analyst", user.Username)
	assert.NotEmpty(t, c.token)

	// Duplicate username conflicts.
	resp, data := c.do(http.MethodPost, "/api/auth/register", models.Registration{
		Username: "analyst", Email: "other@example.com", Password: "hunter22",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "username already taken", errorMessage(t, data))

	// Blank fields are rejected before the service runs.
	resp, data = c.do(http.MethodPost, "/api/auth/register", models.Registration{Username: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "username, email and password are required", errorMessage(t, data))
}

func TestLogin(t *testing.T) {
	c := newTestClient(t)
	c.signup("analyst")
	c.token = ""

	resp, data := c.do(http.MethodPost, "/api/auth/login", models.Credentials{Username: "analyst", Password: "hunter22"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "analyst", out.User.Username)
	assert.NotEmpty(t, out.Token)

	resp, data = c.do(http.MethodPost, "/api/auth/login", models.Credentials{Username: "analyst", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid username or password", errorMessage(t, data))

	resp, data = c.do(http.MethodPost, "/api/auth/login", models.Credentials{Username: "nobody", Password: "hunter22"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid username or password", errorMessage(t, data))
}

func TestMe(t *testing.T) {
	c := newTestClient(t)

	resp, _ := c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	user := c.signup("analyst")
	resp, data := c.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.User
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, user, got)

	c.token = "not-a-token"
	resp, data = c.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid token", errorMessage(t, data))
}

func TestEntityRoutesRequireToken(t *testing.T) {
	c := newTestClient(t)

	for _, path := range []string{"/api/threatactors", "/api/incidentlogs"} {
		resp, data := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "missing bearer token", errorMessage(t, data))
	}
}

func TestThreatActorCRUD(t *testing.T) {
	c := newTestClient(t)
	c.signup("analyst")

	resp, data := c.do(http.MethodGet, "/api/threatactors", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(data))

	draft := models.ThreatActorDraft{
		Name: "Sandworm", Type: "APT", Description: "d", OriginCountry: "RU",
		FirstObserved: "2014-10-01", LastActivity: "2024-03-15",
	}
	resp, data = c.do(http.MethodPost, "/api/threatactors", draft)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.ThreatActor
	require.NoError(t, json.Unmarshal(data, &created))
	assert.NotEmpty(t, created.ActorID)
	assert.Equal(t, draft, created.Draft())

	// The wire uses the actorId key.
	assert.Contains(t, string(data), `"actorId"`)

	resp, data = c.do(http.MethodGet, "/api/threatactors/"+created.ActorID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got models.ThreatActor
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, created, got)

	draft.LastActivity = "2025-08-01"
	draft.Description = ""
	resp, data = c.do(http.MethodPut, "/api/threatactors/"+created.ActorID, draft)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.ThreatActor
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, created.ActorID, updated.ActorID)
	assert.Empty(t, updated.Description)

	resp, _ = c.do(http.MethodDelete, "/api/threatactors/"+created.ActorID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, data = c.do(http.MethodDelete, "/api/threatactors/"+created.ActorID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", errorMessage(t, data))
}

func TestIncidentLogCRUD(t *testing.T) {
	c := newTestClient(t)
	c.signup("analyst")

	draft := models.IncidentLogDraft{Title: "Phishing wave", Description: "d", Date: "2025-06-01"}
	resp, data := c.do(http.MethodPost, "/api/incidentlogs", draft)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.IncidentLog
	require.NoError(t, json.Unmarshal(data, &created))
	assert.NotEmpty(t, created.LogID)
	assert.Contains(t, string(data), `"logId"`)

	resp, data = c.do(http.MethodGet, "/api/incidentlogs", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []models.IncidentLog
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	resp, _ = c.do(http.MethodPut, "/api/incidentlogs/missing", draft)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = c.do(http.MethodDelete, "/api/incidentlogs/"+created.LogID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t)
	c.signup("analyst")

	req, err := http.NewRequest(http.MethodPost, c.srv.URL+"/api/threatactors", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid request body", errorMessage(t, data))
}
