package credentials

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// SecretBytes is the entropy of a generated client secret. Doubled in the hex
// encoding, so secrets are always 64 printable characters.
const SecretBytes = 32

// NewClientID returns a globally-unique opaque client identifier.
func NewClientID() string {
	return uuid.NewString()
}

// NewClientSecret returns a fresh client secret drawn from crypto/rand,
// hex-encoded to a fixed length.
func NewClientSecret() (string, error) {
	buf := make([]byte, SecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("random client secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
