package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/luminauth/idp-console/internal/audit"
	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/enttest"
)

type clientFixture struct {
	router http.Handler
	store  *clients.Store
	ent    *ent.Client
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	entClient := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { entClient.Close() })

	logger := zaptest.NewLogger(t)
	store := clients.NewStore(entClient, logger)
	handler := NewClientHandler(store, audit.New(entClient, logger), logger)

	r := chi.NewRouter()
	r.Route("/oauth-clients", handler.Routes)
	return &clientFixture{router: r, store: store, ent: entClient}
}

func (f *clientFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func validCreateBody() map[string]any {
	return map[string]any{
		"name":          "Acme Dashboard",
		"redirect_uris": []string{"https://app.example.com/cb"},
		"scopes":        []string{"openid", "profile"},
	}
}

func TestCreateClientReturnsSecretOnce(t *testing.T) {
	f := newClientFixture(t)

	rec := f.do(t, http.MethodPost, "/oauth-clients", validCreateBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Client       clients.Client `json:"client"`
		ClientSecret string         `json:"client_secret"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Client.ClientID)
	assert.Len(t, created.ClientSecret, 64)

	getRec := f.do(t, http.MethodGet, "/oauth-clients/"+created.Client.ClientID, nil)
	require.Equal(t, http.StatusOK, getRec.Code)
	assert.NotContains(t, getRec.Body.String(), created.ClientSecret)
	assert.NotContains(t, getRec.Body.String(), "secret_hash")
}

func TestCreateClientValidationFailure(t *testing.T) {
	f := newClientFixture(t)

	body := validCreateBody()
	body["name"] = ""
	body["redirect_uris"] = []string{"http://evil.example.com/cb", "https://app.example.com/*"}

	rec := f.do(t, http.MethodPost, "/oauth-clients", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Code   string `json:"code"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Code)
	assert.GreaterOrEqual(t, len(resp.Fields), 3)
}

func TestCreateClientRejectsUnknownFields(t *testing.T) {
	f := newClientFixture(t)

	body := validCreateBody()
	body["client_secret"] = "attacker-chosen"

	rec := f.do(t, http.MethodPost, "/oauth-clients", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownClient(t *testing.T) {
	f := newClientFixture(t)

	rec := f.do(t, http.MethodGet, "/oauth-clients/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateClient(t *testing.T) {
	f := newClientFixture(t)
	client, _, err := f.store.Create(context.Background(), clients.CreateParams{
		Name:         "Before",
		Type:         "web",
		RedirectURIs: []string{"https://app.example.com/cb"},
		Scopes:       []string{"openid"},
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodPatch, "/oauth-clients/"+client.ClientID, map[string]any{
		"name":     "After",
		"disabled": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated clients.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "After", updated.Name)
	assert.True(t, updated.Disabled)
	assert.Equal(t, client.RedirectURIs, updated.RedirectURIs)
}

func TestDeleteClient(t *testing.T) {
	f := newClientFixture(t)
	client, _, err := f.store.Create(context.Background(), clients.CreateParams{
		Name:         "Doomed",
		Type:         "web",
		RedirectURIs: []string{"https://app.example.com/cb"},
		Scopes:       []string{"openid"},
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodDelete, "/oauth-clients/"+client.ClientID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodDelete, "/oauth-clients/"+client.ClientID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRotateSecret(t *testing.T) {
	f := newClientFixture(t)
	client, original, err := f.store.Create(context.Background(), clients.CreateParams{
		Name:         "Rotating",
		Type:         "web",
		RedirectURIs: []string{"https://app.example.com/cb"},
		Scopes:       []string{"openid"},
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/oauth-clients/"+client.ClientID+"/regenerate-secret", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["client_secret"], 64)
	assert.NotEqual(t, original, resp["client_secret"])
}

func TestListClients(t *testing.T) {
	f := newClientFixture(t)
	for _, name := range []string{"Acme Dashboard", "Billing Portal"} {
		_, _, err := f.store.Create(context.Background(), clients.CreateParams{
			Name:         name,
			Type:         "web",
			RedirectURIs: []string{"https://app.example.com/cb"},
			Scopes:       []string{"openid"},
		})
		require.NoError(t, err)
	}

	rec := f.do(t, http.MethodGet, "/oauth-clients?search=acme", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Clients []clients.Client `json:"clients"`
		Total   int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "Acme Dashboard", resp.Clients[0].Name)
}
