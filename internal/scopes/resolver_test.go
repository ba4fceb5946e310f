package scopes

import (
	"context"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/language"

	"github.com/luminauth/idp-console/internal/ent"
	"github.com/luminauth/idp-console/internal/ent/enttest"
)

func newTestResolver(t *testing.T) (*Resolver, *ent.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	entClient := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { entClient.Close() })
	return NewResolver(entClient, zaptest.NewLogger(t)), entClient
}

func TestResolvePrefersStoreRow(t *testing.T) {
	resolver, entClient := newTestResolver(t)
	ctx := context.Background()

	_, err := entClient.ScopeDescription.Create().
		SetName("profile").
		SetLocale("en").
		SetDisplayName("Your profile").
		SetDescription("Stored description").
		Save(ctx)
	require.NoError(t, err)

	got := resolver.Resolve(ctx, "profile", language.English)
	assert.Equal(t, "profile", got.Name)
	assert.Equal(t, "Your profile", got.DisplayName)
	assert.Equal(t, "Stored description", got.Description)
}

func TestResolveBaseLanguageRow(t *testing.T) {
	resolver, entClient := newTestResolver(t)
	ctx := context.Background()

	_, err := entClient.ScopeDescription.Create().
		SetName("email").
		SetLocale("zh").
		SetDisplayName("邮箱(自定义)").
		Save(ctx)
	require.NoError(t, err)

	got := resolver.Resolve(ctx, "email", language.MustParse("zh-CN"))
	assert.Equal(t, "邮箱(自定义)", got.DisplayName)
}

func TestResolveFallsBackToRequestedLocaleDictionary(t *testing.T) {
	resolver, _ := newTestResolver(t)

	// No zh row for "profile": the zh dictionary is used, not the en one.
	got := resolver.Resolve(context.Background(), "profile", language.Chinese)
	assert.Equal(t, "个人资料", got.DisplayName)
}

func TestResolveLiteralWhenDictionaryLacksScope(t *testing.T) {
	resolver, _ := newTestResolver(t)

	got := resolver.Resolve(context.Background(), "inventory:read", language.Chinese)
	assert.Equal(t, "inventory:read", got.Name)
	assert.Equal(t, "inventory:read", got.DisplayName)
	assert.Empty(t, got.Description)
}

func TestResolveUnsupportedLocaleUsesEnglishDictionary(t *testing.T) {
	resolver, _ := newTestResolver(t)

	got := resolver.Resolve(context.Background(), "openid", language.MustParse("de"))
	assert.Equal(t, "Sign-in", got.DisplayName)
}

func TestResolveAllIsIdempotent(t *testing.T) {
	resolver, _ := newTestResolver(t)
	ctx := context.Background()
	names := []string{"openid", "profile", "email"}

	first := resolver.ResolveAll(ctx, names, language.Chinese)
	second := resolver.ResolveAll(ctx, names, language.Chinese)
	require.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, language.English, ParseLocale(""))
	assert.Equal(t, language.English, ParseLocale("!!"))
	assert.Equal(t, language.MustParse("zh-CN"), ParseLocale("zh-CN"))
}

func TestParseLocaleAcceptLanguageList(t *testing.T) {
	// The weighted list form browsers send must yield the preferred tag,
	// not collapse to the English default.
	tag := ParseLocale("zh-CN,zh;q=0.9,en;q=0.8")
	assert.Equal(t, language.MustParse("zh-CN"), tag)

	base, _ := ParseLocale("es-MX;q=0.9,en;q=0.4").Base()
	assert.Equal(t, "es", base.String())
}
