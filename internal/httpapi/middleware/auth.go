package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/luminauth/idp-console/internal/token"
)

// AdminScope is the token scope required for client administration.
const AdminScope = "admin"

// TokenValidator defines the capabilities required to validate JWTs.
type TokenValidator interface {
	Parse(tokenStr string) (*token.Claims, error)
}

// Auth provides JWT-backed authentication middleware.
type Auth struct {
	validator TokenValidator
}

// NewAuth creates a new instance.
func NewAuth(validator TokenValidator) *Auth {
	return &Auth{validator: validator}
}

// RequireAuth ensures incoming requests possess a valid bearer token.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.claims(r)
		if !ok {
			writeAuthError(w, "missing or invalid bearer token")
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin ensures the caller holds the admin scope. The response is
// identical for unauthenticated and non-admin callers so nothing about
// resource existence or role assignment leaks.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := a.claims(r)
		if !ok || !claims.HasScope(AdminScope) {
			writeAuthError(w, "unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) claims(r *http.Request) (*token.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return nil, false
	}
	claims, err := a.validator.Parse(strings.TrimSpace(authHeader[7:]))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": message,
		"code":  "unauthorized",
	})
}

type claimsContextKey struct{}

// ClaimsFromContext extracts token claims stored by middleware.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*token.Claims)
	return claims, ok && claims != nil
}

// WithClaims returns a context carrying the given claims. Exposed for handler
// tests.
func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}
