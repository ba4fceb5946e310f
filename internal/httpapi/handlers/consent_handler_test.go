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
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/config"
	"github.com/luminauth/idp-console/internal/consent"
	"github.com/luminauth/idp-console/internal/ent/enttest"
	"github.com/luminauth/idp-console/internal/httpapi/middleware"
	"github.com/luminauth/idp-console/internal/scopes"
	"github.com/luminauth/idp-console/internal/token"
)

type stubAuthorizer struct {
	redirect string
	err      error
}

func (s *stubAuthorizer) Submit(context.Context, string, consent.Decision) (string, error) {
	return s.redirect, s.err
}

type consentFixture struct {
	router  http.Handler
	store   *clients.Store
	grants  *consent.Store
	userID  uuid.UUID
	clients *clients.Client
}

func newConsentFixture(t *testing.T) *consentFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	entClient := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { entClient.Close() })

	logger := zaptest.NewLogger(t)
	clientStore := clients.NewStore(entClient, logger)
	grantStore := consent.NewStore(entClient)

	svc := consent.New(consent.Dependencies{
		Clients:    clientStore,
		Grants:     grantStore,
		Resolver:   scopes.NewResolver(entClient, logger),
		Authorizer: &stubAuthorizer{redirect: "https://auth.example.com/continue"},
		Logger:     logger,
	})

	registered, _, err := clientStore.Create(context.Background(), clients.CreateParams{
		Name:         "Acme Dashboard",
		Type:         "web",
		RedirectURIs: []string{"https://app.example.com/cb"},
		Scopes:       []string{"openid", "profile"},
	})
	require.NoError(t, err)

	userID := uuid.New()
	handler := NewConsentHandler(svc, grantStore, config.BrandingConfig{AppName: "Luminauth"}, logger)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			claims := &token.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}
			next.ServeHTTP(w, req.WithContext(middleware.WithClaims(req.Context(), claims)))
		})
	})
	r.Route("/consent", handler.Routes)

	return &consentFixture{
		router:  r,
		store:   clientStore,
		grants:  grantStore,
		userID:  userID,
		clients: registered,
	}
}

func (f *consentFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
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

func TestPromptRendersClientAndScopes(t *testing.T) {
	f := newConsentFixture(t)

	rec := f.do(t, http.MethodGet, "/consent?consent_code=code-1&client_id="+f.clients.ClientID+"&scope=openid+profile&locale=es", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AppName    string               `json:"app_name"`
		ClientName string               `json:"client_name"`
		Scopes     []scopes.Description `json:"scopes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Luminauth", resp.AppName)
	assert.Equal(t, "Acme Dashboard", resp.ClientName)
	require.Len(t, resp.Scopes, 2)
	assert.Equal(t, "Inicio de sesión", resp.Scopes[0].DisplayName)
}

func TestPromptUsesAcceptLanguageHeader(t *testing.T) {
	f := newConsentFixture(t)

	req := httptest.NewRequest(http.MethodGet,
		"/consent?consent_code=code-1&client_id="+f.clients.ClientID+"&scope=openid", nil)
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Scopes []scopes.Description `json:"scopes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Scopes, 1)
	assert.Equal(t, "登录", resp.Scopes[0].DisplayName)
}

func TestPromptErrors(t *testing.T) {
	f := newConsentFixture(t)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"missing code", "/consent?client_id=" + f.clients.ClientID, http.StatusBadRequest},
		{"missing client", "/consent?consent_code=code-1", http.StatusBadRequest},
		{"unknown client", "/consent?consent_code=code-1&client_id=ghost", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestDecideAcceptReturnsRedirect(t *testing.T) {
	f := newConsentFixture(t)

	rec := f.do(t, http.MethodPost, "/consent/decision", map[string]any{
		"consent_code": "code-1",
		"client_id":    f.clients.ClientID,
		"scope":        "openid profile",
		"accept":       true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://auth.example.com/continue", resp["redirect_to"])

	grant, err := f.grants.Get(context.Background(), f.clients.ClientID, f.userID, "")
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, []string{"openid", "profile"}, grant.Scopes)
}

func TestDecideDenyRecordsNothing(t *testing.T) {
	f := newConsentFixture(t)

	rec := f.do(t, http.MethodPost, "/consent/decision", map[string]any{
		"consent_code": "code-1",
		"client_id":    f.clients.ClientID,
		"accept":       false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	grant, err := f.grants.Get(context.Background(), f.clients.ClientID, f.userID, "")
	require.NoError(t, err)
	assert.Nil(t, grant)
}

func TestGrantsListAndRevoke(t *testing.T) {
	f := newConsentFixture(t)
	_, err := f.grants.Upsert(context.Background(), f.clients.ClientID, f.userID, "", []string{"openid"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/consent/grants", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Grants []consent.Grant `json:"grants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Grants, 1)
	assert.Equal(t, f.clients.ClientID, resp.Grants[0].ClientID)

	rec = f.do(t, http.MethodDelete, "/consent/grants/"+f.clients.ClientID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	grant, err := f.grants.Get(context.Background(), f.clients.ClientID, f.userID, "")
	require.NoError(t, err)
	assert.Nil(t, grant)
}
