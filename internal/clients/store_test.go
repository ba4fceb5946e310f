package clients

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/consent"
	"github.com/luminauth/idp-console/internal/ent/enttest"
	"github.com/luminauth/idp-console/internal/ent/oauthtoken"
)

func newTestStore(t *testing.T) (*Store, *ent.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	entClient := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { entClient.Close() })
	return NewStore(entClient, zaptest.NewLogger(t)), entClient
}

func mustCreate(t *testing.T, store *Store, params CreateParams) (*Client, string) {
	t.Helper()
	if params.Name == "" {
		params.Name = "Test App"
	}
	if params.Type == "" {
		params.Type = "web"
	}
	if len(params.RedirectURIs) == 0 {
		params.RedirectURIs = []string{"https://app.example.com/cb"}
	}
	if len(params.Scopes) == 0 {
		params.Scopes = []string{"openid"}
	}
	if len(params.GrantTypes) == 0 {
		params.GrantTypes = []string{"authorization_code"}
	}
	if len(params.ResponseTypes) == 0 {
		params.ResponseTypes = []string{"code"}
	}
	client, secret, err := store.Create(context.Background(), params)
	require.NoError(t, err)
	return client, secret
}

func TestStoreCreateGeneratesCredentials(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	client, secret, err := store.Create(ctx, CreateParams{
		Name:          "Acme Dashboard",
		Type:          "web",
		RedirectURIs:  []string{"https://app.example.com/cb"},
		Scopes:        []string{"openid", "profile"},
		GrantTypes:    []string{"authorization_code"},
		ResponseTypes: []string{"code"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, client.ClientID)
	assert.Len(t, secret, 64)
	assert.False(t, client.CreatedAt.IsZero())
	assert.NoError(t, store.VerifySecret(ctx, client.ClientID, secret))
	assert.ErrorIs(t, store.VerifySecret(ctx, client.ClientID, "wrong"), ErrSecretMismatch)
}

func TestStoreCreatePublicClientHasNoSecret(t *testing.T) {
	store, _ := newTestStore(t)

	client, secret := mustCreate(t, store, CreateParams{Type: "public"})
	assert.Empty(t, secret)
	assert.ErrorIs(t,
		store.VerifySecret(context.Background(), client.ClientID, ""),
		ErrSecretMismatch)
}

func TestStoreGetNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdateReplacesRedirectURIs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	client, _ := mustCreate(t, store, CreateParams{})

	uris := []string{"https://new.example.com/cb", "https://second.example.com/cb"}
	updated, err := store.Update(ctx, client.ClientID, UpdateParams{RedirectURIs: &uris})
	require.NoError(t, err)
	assert.Equal(t, uris, updated.RedirectURIs)

	got, err := store.Get(ctx, client.ClientID)
	require.NoError(t, err)
	assert.Equal(t, uris, got.RedirectURIs)
	assert.False(t, got.UpdatedAt.Before(client.UpdatedAt))
}

func TestStoreUpdatePreservesAbsentFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	client, _ := mustCreate(t, store, CreateParams{Name: "Original", Homepage: "https://example.com"})

	disabled := true
	updated, err := store.Update(ctx, client.ClientID, UpdateParams{Disabled: &disabled})
	require.NoError(t, err)

	assert.True(t, updated.Disabled)
	assert.Equal(t, "Original", updated.Name)
	assert.Equal(t, "https://example.com", updated.Homepage)
	assert.Equal(t, client.RedirectURIs, updated.RedirectURIs)
}

func TestStoreUpdateNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	name := "X"
	_, err := store.Update(context.Background(), "missing", UpdateParams{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreReadsLegacyRedirectRepresentation(t *testing.T) {
	store, entClient := newTestStore(t)
	ctx := context.Background()

	// A row written before the JSON migration.
	_, err := entClient.OAuthClient.Create().
		SetClientID("legacy-client").
		SetName("Legacy").
		SetRedirectUris("https://a.example.com/cb,https://b.example.com/cb").
		SetURISchemaVersion(URISchemaLegacy).
		Save(ctx)
	require.NoError(t, err)

	got, err := store.Get(ctx, "legacy-client")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://a.example.com/cb", "https://b.example.com/cb"},
		got.RedirectURIs)

	// Any rewrite moves the row to the current representation.
	uris := []string{"https://c.example.com/cb"}
	_, err = store.Update(ctx, "legacy-client", UpdateParams{RedirectURIs: &uris})
	require.NoError(t, err)

	row, err := entClient.OAuthClient.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, URISchemaCurrent, row.URISchemaVersion)
	assert.Equal(t, `["https://c.example.com/cb"]`, row.RedirectUris)
}

func TestStoreRotateSecretInvalidatesPrevious(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	client, original := mustCreate(t, store, CreateParams{})

	first, err := store.RotateSecret(ctx, client.ClientID)
	require.NoError(t, err)
	assert.ErrorIs(t, store.VerifySecret(ctx, client.ClientID, original), ErrSecretMismatch)
	assert.NoError(t, store.VerifySecret(ctx, client.ClientID, first))

	second, err := store.RotateSecret(ctx, client.ClientID)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.ErrorIs(t, store.VerifySecret(ctx, client.ClientID, first), ErrSecretMismatch)
	assert.NoError(t, store.VerifySecret(ctx, client.ClientID, second))
}

func TestStoreVerifySecretDisabledClient(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	client, secret := mustCreate(t, store, CreateParams{})

	disabled := true
	_, err := store.Update(ctx, client.ClientID, UpdateParams{Disabled: &disabled})
	require.NoError(t, err)

	assert.ErrorIs(t, store.VerifySecret(ctx, client.ClientID, secret), ErrSecretMismatch)
}

func TestStoreDeleteCascades(t *testing.T) {
	store, entClient := newTestStore(t)
	ctx := context.Background()
	client, _ := mustCreate(t, store, CreateParams{})
	userID := uuid.New()

	_, err := entClient.Consent.Create().
		SetClientID(client.ClientID).
		SetUserID(userID).
		SetScopes([]string{"openid"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = entClient.OAuthToken.Create().
		SetClientID(client.ClientID).
		SetUserID(userID).
		SetTokenHash("deadbeef").
		SetKind("access").
		SetExpiresAt(client.CreatedAt.Add(1)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, client.ClientID))

	_, err = store.Get(ctx, client.ClientID)
	assert.ErrorIs(t, err, ErrNotFound)

	consents, err := entClient.Consent.Query().
		Where(consent.ClientIDEQ(client.ClientID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, consents)

	tokens, err := entClient.OAuthToken.Query().
		Where(oauthtoken.ClientIDEQ(client.ClientID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, tokens)
}

func TestStoreDeleteNotFound(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestStoreListSearchAndOrder(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	mustCreate(t, store, CreateParams{Name: "Alpha Dashboard"})
	mustCreate(t, store, CreateParams{Name: "Beta Portal"})
	mustCreate(t, store, CreateParams{Name: "alphanumeric tool"})

	rows, total, err := store.List(ctx, "ALPHA", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = store.List(ctx, "", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].CreatedAt.Before(rows[1].CreatedAt))
}
