package token

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminauth/idp-console/internal/config"
)

func testService(t *testing.T) *Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return NewWithKeypair(config.TokenConfig{
		Issuer:         "https://id.test.local",
		Audience:       "idp-console",
		AccessTokenTTL: 15 * time.Minute,
	}, key)
}

func TestMintAndParse(t *testing.T) {
	svc := testService(t)
	userID := uuid.New()

	signed, exp, err := svc.Mint(MintInput{
		UserID: userID,
		Email:  "dev@example.com",
		Scopes: []string{"openid", "admin"},
	})
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.True(t, claims.HasScope("admin"))
	assert.False(t, claims.HasScope("superuser"))

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseRejectsForeignKey(t *testing.T) {
	signed, _, err := testService(t).Mint(MintInput{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = testService(t).Parse(signed)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := testService(t).Parse("not-a-jwt")
	assert.Error(t, err)
}

func TestMintWithoutSigningKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	svc := newService(config.TokenConfig{AccessTokenTTL: time.Minute}, nil, &key.PublicKey)

	_, _, err = svc.Mint(MintInput{UserID: uuid.New()})
	assert.Error(t, err)
}
