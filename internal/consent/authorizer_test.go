package consent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestHTTPAuthorizerSubmit(t *testing.T) {
	var gotPath string
	var gotBody Decision
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"redirect_to": "https://auth.example.com/continue?code=abc",
		})
	}))
	defer server.Close()

	authorizer := NewHTTPAuthorizer(server.URL, 5*time.Second, zaptest.NewLogger(t))
	redirectTo, err := authorizer.Submit(context.Background(), "code-1", Decision{
		Accept: true,
		Scope:  "openid profile",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://auth.example.com/continue?code=abc", redirectTo)
	assert.Equal(t, "/consent/code-1", gotPath)
	assert.True(t, gotBody.Accept)
	assert.Equal(t, "openid profile", gotBody.Scope)
}

func TestHTTPAuthorizerUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "consent code expired"})
	}))
	defer server.Close()

	authorizer := NewHTTPAuthorizer(server.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := authorizer.Submit(context.Background(), "stale", Decision{Accept: true})
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestHTTPAuthorizerMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	authorizer := NewHTTPAuthorizer(server.URL, 5*time.Second, zaptest.NewLogger(t))
	_, err := authorizer.Submit(context.Background(), "code-1", Decision{Accept: false})
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestHTTPAuthorizerUnreachable(t *testing.T) {
	authorizer := NewHTTPAuthorizer("http://127.0.0.1:1", time.Second, zaptest.NewLogger(t))
	_, err := authorizer.Submit(context.Background(), "code-1", Decision{Accept: true})
	assert.ErrorIs(t, err, ErrAuthorization)
}
