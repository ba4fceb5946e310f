package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminauth/idp-console/internal/config"
	"github.com/luminauth/idp-console/internal/token"
)

func newAuthFixture(t *testing.T) (*Auth, *token.Service) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	svc := token.NewWithKeypair(config.TokenConfig{
		Issuer:         "https://id.test.local",
		Audience:       "idp-console",
		AccessTokenTTL: 15 * time.Minute,
	}, key)
	return NewAuth(svc), svc
}

func mint(t *testing.T, svc *token.Service, scopes ...string) string {
	t.Helper()
	signed, _, err := svc.Mint(token.MintInput{UserID: uuid.New(), Scopes: scopes})
	require.NoError(t, err)
	return signed
}

func okHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		_, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	auth, svc := newAuthFixture(t)
	var hit bool

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mint(t, svc, "openid"))
	rec := httptest.NewRecorder()
	auth.RequireAuth(okHandler(&hit)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hit)
}

func TestRequireAuthRejects(t *testing.T) {
	auth, _ := newAuthFixture(t)

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic dXNlcjpwYXNz",
		"invalid token":  "Bearer garbage",
	} {
		t.Run(name, func(t *testing.T) {
			var hit bool
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			auth.RequireAuth(okHandler(&hit)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, hit)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth, svc := newAuthFixture(t)

	t.Run("admin scope passes", func(t *testing.T) {
		var hit bool
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mint(t, svc, "openid", AdminScope))
		rec := httptest.NewRecorder()
		auth.RequireAdmin(okHandler(&hit)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("authenticated non-admin gets same response as anonymous", func(t *testing.T) {
		var hit bool
		userReq := httptest.NewRequest(http.MethodGet, "/", nil)
		userReq.Header.Set("Authorization", "Bearer "+mint(t, svc, "openid"))
		userRec := httptest.NewRecorder()
		auth.RequireAdmin(okHandler(&hit)).ServeHTTP(userRec, userReq)

		anonRec := httptest.NewRecorder()
		auth.RequireAdmin(okHandler(&hit)).ServeHTTP(anonRec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, userRec.Code)
		assert.Equal(t, anonRec.Body.String(), userRec.Body.String())
		assert.False(t, hit)
	})
}
