package consent

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/enttest"
	"github.com/luminauth/idp-console/internal/scopes"
)

type fakeAuthorizer struct {
	redirect string
	err      error
	calls    int
	lastCode string
	lastBody Decision
}

func (f *fakeAuthorizer) Submit(_ context.Context, code string, decision Decision) (string, error) {
	f.calls++
	f.lastCode = code
	f.lastBody = decision
	return f.redirect, f.err
}

type fixture struct {
	service    *Service
	ent        *ent.Client
	clients    *clients.Store
	grants     *Store
	authorizer *fakeAuthorizer
}

func newFixture(t *testing.T, opts ...func(*Dependencies)) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	entClient := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { entClient.Close() })

	logger := zaptest.NewLogger(t)
	clientStore := clients.NewStore(entClient, logger)
	grantStore := NewStore(entClient)
	authorizer := &fakeAuthorizer{redirect: "https://auth.example.com/continue"}

	deps := Dependencies{
		Clients:    clientStore,
		Grants:     grantStore,
		Resolver:   scopes.NewResolver(entClient, logger),
		Authorizer: authorizer,
		Logger:     logger,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	return &fixture{
		service:    New(deps),
		ent:        entClient,
		clients:    clientStore,
		grants:     grantStore,
		authorizer: authorizer,
	}
}

func (f *fixture) registerClient(t *testing.T) *clients.Client {
	t.Helper()
	client, _, err := f.clients.Create(context.Background(), clients.CreateParams{
		Name:          "Acme Dashboard",
		Type:          "web",
		RedirectURIs:  []string{"https://app.example.com/cb"},
		Scopes:        []string{"openid", "profile"},
		GrantTypes:    []string{"authorization_code"},
		ResponseTypes: []string{"code"},
	})
	require.NoError(t, err)
	return client
}

func TestDescribeMissingCode(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)

	_, err := f.service.Describe(context.Background(), PromptInput{
		ClientID: client.ClientID,
		Scope:    "openid",
		Locale:   language.English,
	})
	assert.ErrorIs(t, err, ErrMissingCode)
	assert.Zero(t, f.authorizer.calls, "authorize endpoint must not be called")
}

func TestDescribeMissingClientID(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Describe(context.Background(), PromptInput{
		ConsentCode: "code-1",
		Scope:       "openid",
	})
	assert.ErrorIs(t, err, ErrMissingClientID)
}

func TestDescribeUnknownClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Describe(context.Background(), PromptInput{
		ConsentCode: "code-1",
		ClientID:    "no-such-client",
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDescribeDisabledClient(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)
	disabled := true
	_, err := f.clients.Update(context.Background(), client.ClientID, clients.UpdateParams{Disabled: &disabled})
	require.NoError(t, err)

	_, err = f.service.Describe(context.Background(), PromptInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDescribeResolvesScopes(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)

	prompt, err := f.service.Describe(context.Background(), PromptInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
		Scope:       "openid profile email",
		Locale:      language.Chinese,
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Dashboard", prompt.ClientName)
	require.Len(t, prompt.Scopes, 3)
	assert.Equal(t, "登录", prompt.Scopes[0].DisplayName)
	assert.Equal(t, "个人资料", prompt.Scopes[1].DisplayName)
}

func TestDecideAcceptRecordsGrantAndRedirects(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)
	userID := uuid.New()
	ctx := context.Background()

	redirectTo, err := f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
		UserID:      userID,
		Scope:       "openid profile",
		Accept:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://auth.example.com/continue", redirectTo)
	assert.Equal(t, "code-1", f.authorizer.lastCode)
	assert.True(t, f.authorizer.lastBody.Accept)

	grant, err := f.grants.Get(ctx, client.ClientID, userID, "")
	require.NoError(t, err)
	require.NotNil(t, grant)
	assert.Equal(t, []string{"openid", "profile"}, grant.Scopes)
}

func TestDecideAcceptReplacesPreviousScopes(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-1", ClientID: client.ClientID, UserID: userID,
		Scope: "openid profile", Accept: true,
	})
	require.NoError(t, err)

	_, err = f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-2", ClientID: client.ClientID, UserID: userID,
		Scope: "openid", Accept: true,
	})
	require.NoError(t, err)

	grant, err := f.grants.Get(ctx, client.ClientID, userID, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"openid"}, grant.Scopes)

	count, err := f.ent.Consent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDecideDenyWritesNothing(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)
	userID := uuid.New()
	ctx := context.Background()

	redirectTo, err := f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
		UserID:      userID,
		Scope:       "openid",
		Accept:      false,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, redirectTo)
	assert.False(t, f.authorizer.lastBody.Accept)

	grant, err := f.grants.Get(ctx, client.ClientID, userID, "")
	require.NoError(t, err)
	assert.Nil(t, grant)
}

func TestDecideUpstreamFailureLeavesNoGrant(t *testing.T) {
	f := newFixture(t)
	f.authorizer.err = ErrAuthorization
	client := f.registerClient(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
		UserID:      userID,
		Scope:       "openid",
		Accept:      true,
	})
	assert.ErrorIs(t, err, ErrAuthorization)

	grant, err := f.grants.Get(ctx, client.ClientID, userID, "")
	require.NoError(t, err)
	assert.Nil(t, grant)
}

func TestDecideMissingInputsSkipUpstream(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)

	_, err := f.service.Decide(context.Background(), DecisionInput{
		ClientID: client.ClientID, Accept: true,
	})
	assert.ErrorIs(t, err, ErrMissingCode)

	_, err = f.service.Decide(context.Background(), DecisionInput{
		ConsentCode: "code-1", Accept: true,
	})
	assert.ErrorIs(t, err, ErrMissingClientID)

	assert.Zero(t, f.authorizer.calls)
}

func TestDecideInFlightLock(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	f := newFixture(t, func(d *Dependencies) { d.Redis = redisClient })
	client := f.registerClient(t)
	ctx := context.Background()

	// Simulate a decision already in flight for this code.
	require.NoError(t, redisClient.SetNX(ctx, "consent:inflight:code-1", "1", 0).Err())

	_, err := f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-1",
		ClientID:    client.ClientID,
		UserID:      uuid.New(),
		Scope:       "openid",
		Accept:      true,
	})
	assert.ErrorIs(t, err, ErrDecisionInFlight)
	assert.Zero(t, f.authorizer.calls)

	// A different code proceeds and releases its lock afterwards.
	_, err = f.service.Decide(ctx, DecisionInput{
		ConsentCode: "code-2",
		ClientID:    client.ClientID,
		UserID:      uuid.New(),
		Scope:       "openid",
		Accept:      true,
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("consent:inflight:code-2"))
}

func TestRevokeDeletesGrantRow(t *testing.T) {
	f := newFixture(t)
	client := f.registerClient(t)
	userID := uuid.New()
	ctx := context.Background()

	_, err := f.grants.Upsert(ctx, client.ClientID, userID, "", []string{"openid"})
	require.NoError(t, err)

	require.NoError(t, f.grants.Revoke(ctx, client.ClientID, userID, ""))

	grant, err := f.grants.Get(ctx, client.ClientID, userID, "")
	require.NoError(t, err)
	assert.Nil(t, grant)

	// Revoking an absent grant is a no-op.
	assert.NoError(t, f.grants.Revoke(ctx, client.ClientID, userID, ""))
}
