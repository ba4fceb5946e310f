package clients

import (
	"encoding/json"
	"strings"
)

// Storage versions for the redirect URI column. Version 1 rows predate the
// JSON migration and hold a comma-delimited string; version 2 rows hold a
// JSON array. Reads accept both, writes always produce the current version.
const (
	URISchemaLegacy  = 1
	URISchemaCurrent = 2
)

// URICodec converts between the persisted redirect URI column and the
// normalized ordered string list.
type URICodec interface {
	Decode(raw string) []string
	Encode(list []string) string
}

// CodecFor selects the codec matching a row's schema version tag. Unknown
// versions fall back to the current codec.
func CodecFor(version int) URICodec {
	if version == URISchemaLegacy {
		return legacyCodec{}
	}
	return jsonCodec{}
}

type legacyCodec struct{}

func (legacyCodec) Decode(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (legacyCodec) Encode(list []string) string {
	return strings.Join(list, ",")
}

type jsonCodec struct{}

func (jsonCodec) Decode(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// A malformed column is treated as the legacy shape rather than lost.
		return legacyCodec{}.Decode(raw)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (jsonCodec) Encode(list []string) string {
	if len(list) == 0 {
		return "[]"
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}
