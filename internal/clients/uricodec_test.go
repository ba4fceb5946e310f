package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyCodecDecode(t *testing.T) {
	codec := CodecFor(URISchemaLegacy)

	assert.Equal(t,
		[]string{"https://a.example.com/cb", "https://b.example.com/cb"},
		codec.Decode("https://a.example.com/cb,https://b.example.com/cb"))
	assert.Equal(t,
		[]string{"https://a.example.com/cb"},
		codec.Decode(" https://a.example.com/cb , "))
	assert.Nil(t, codec.Decode(""))
}

func TestCurrentCodecRoundTrip(t *testing.T) {
	codec := CodecFor(URISchemaCurrent)
	uris := []string{"https://a.example.com/cb", "http://localhost:3000/cb"}

	assert.Equal(t, uris, codec.Decode(codec.Encode(uris)))
	assert.Equal(t, "[]", codec.Encode(nil))
	assert.Nil(t, codec.Decode("[]"))
	assert.Nil(t, codec.Decode(""))
}

func TestCurrentCodecReadsLegacyShape(t *testing.T) {
	// Rows mis-tagged during the migration still decode.
	codec := CodecFor(URISchemaCurrent)
	assert.Equal(t,
		[]string{"https://a.example.com/cb"},
		codec.Decode("https://a.example.com/cb"))
}

func TestCodecForUnknownVersion(t *testing.T) {
	codec := CodecFor(99)
	assert.Equal(t, `["https://a.example.com/cb"]`, codec.Encode([]string{"https://a.example.com/cb"}))
}
