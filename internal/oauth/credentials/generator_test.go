package credentials

import (
	"encoding/hex"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientIDIsUniqueAndParseable(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := NewClientID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate client id %s", id)
		seen[id] = true
	}
}

func TestNewClientSecretShape(t *testing.T) {
	secret, err := NewClientSecret()
	require.NoError(t, err)
	assert.Len(t, secret, SecretBytes*2)

	decoded, err := hex.DecodeString(secret)
	require.NoError(t, err)
	assert.Len(t, decoded, SecretBytes)
}

func TestNewClientSecretNeverRepeats(t *testing.T) {
	seen := map[string]bool{}
	for range 200 {
		secret, err := NewClientSecret()
		require.NoError(t, err)
		assert.Len(t, secret, SecretBytes*2)
		assert.False(t, seen[secret], "duplicate secret generated")
		seen[secret] = true
	}
}
